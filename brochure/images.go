package brochure

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth = 600
	jpegQuality   = 80
)

// photo is a decoded asset re-encoded as JPEG for embedding.
type photo struct {
	data          []byte
	width, height int
}

// assetPath maps a site path such as "/Adjustment/adjustment (1).webp" onto
// the static directory, refusing anything that escapes it.
func assetPath(dir, src string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(src, "/"))
	p := filepath.Join(dir, rel)
	r, err := filepath.Rel(dir, p)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("asset %q is outside %s", src, dir)
	}
	return p, nil
}

// loadPhoto decodes a webp, jpeg or png asset, shrinks it to maxImageWidth
// and encodes it as JPEG.
func loadPhoto(dir, src string) (photo, error) {
	p, err := assetPath(dir, src)
	if err != nil {
		return photo{}, err
	}
	f, err := os.Open(p)
	if err != nil {
		return photo{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return photo{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxImageWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return photo{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return photo{data: buf.Bytes(), width: w, height: h}, nil
}
