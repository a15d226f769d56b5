// Package gallery models the site's photo albums: the fixed ordered image
// sequences, their category bands, the category filter shown on the home page
// and the single-image lightbox used on the contact page.
package gallery

import (
	"errors"
	"fmt"
	"hash/fnv"
	"path"
)

// Tag is a gallery category.
type Tag string

const (
	TagAll    Tag = "all"
	TagPlay   Tag = "play"
	TagLearn  Tag = "learn"
	TagEvents Tag = "events"
)

// Tags lists the filter tabs in display order.
var Tags = []Tag{TagAll, TagPlay, TagLearn, TagEvents}

// ErrBands is returned when a band partition does not cover the album exactly.
var ErrBands = errors.New("gallery: invalid bands")

// ParseTag maps raw input onto the closed tag set.
func ParseTag(s string) (Tag, bool) {
	for _, t := range Tags {
		if string(t) == s {
			return t, true
		}
	}
	return TagAll, false
}

// Image is one entry of an album.
type Image struct {
	Index  int // zero-based position in the album
	Number int // ordinal used in the file name, Index+1
	Src    string
	Tag    Tag
}

// Band assigns the half-open index range [From, To) to Tag.
type Band struct {
	Tag  Tag `yaml:"tag"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// SourcePath builds the asset path for image n of a folder, e.g.
// SourcePath("ALBUM", "image", 3, "webp") = "/ALBUM/image (3).webp".
func SourcePath(dir, stem string, n int, ext string) string {
	return path.Join("/", dir, fmt.Sprintf("%s (%d).%s", stem, n, ext))
}

// Album is an immutable ordered image sequence.
type Album struct {
	images []Image
}

// DefaultBands is the home page partition of the 28 album photos.
func DefaultBands() []Band {
	return []Band{
		{Tag: TagPlay, From: 0, To: 10},
		{Tag: TagLearn, From: 10, To: 20},
		{Tag: TagEvents, From: 20, To: 28},
	}
}

// NewAlbum builds count images under dir/stem. Bands must be ascending,
// contiguous, start at 0 and end at count. With no bands every image is
// untagged and only visible under TagAll.
func NewAlbum(dir, stem, ext string, count int, bands []Band) (*Album, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrBands, count)
	}
	if err := checkBands(count, bands); err != nil {
		return nil, err
	}
	images := make([]Image, count)
	for i := range images {
		images[i] = Image{
			Index:  i,
			Number: i + 1,
			Src:    SourcePath(dir, stem, i+1, ext),
			Tag:    tagFor(i, bands),
		}
	}
	return &Album{images: images}, nil
}

func checkBands(count int, bands []Band) error {
	if len(bands) == 0 {
		return nil
	}
	next := 0
	for _, b := range bands {
		if _, ok := ParseTag(string(b.Tag)); !ok || b.Tag == TagAll {
			return fmt.Errorf("%w: unknown tag %q", ErrBands, b.Tag)
		}
		if b.From != next {
			return fmt.Errorf("%w: %s starts at %d, want %d", ErrBands, b.Tag, b.From, next)
		}
		if b.To <= b.From {
			return fmt.Errorf("%w: %s is empty", ErrBands, b.Tag)
		}
		next = b.To
	}
	if next != count {
		return fmt.Errorf("%w: bands end at %d, album has %d images", ErrBands, next, count)
	}
	return nil
}

func tagFor(i int, bands []Band) Tag {
	for _, b := range bands {
		if i >= b.From && i < b.To {
			return b.Tag
		}
	}
	return ""
}

// Images returns a copy of every image in order.
func (a *Album) Images() []Image {
	out := make([]Image, len(a.images))
	copy(out, a.images)
	return out
}

// Len returns the number of images.
func (a *Album) Len() int {
	return len(a.images)
}

// ByNumber looks up an image by its 1-based file number.
func (a *Album) ByNumber(n int) (Image, bool) {
	if n < 1 || n > len(a.images) {
		return Image{}, false
	}
	return a.images[n-1], true
}

// TapeColors are the washi tape strips pinned above each polaroid.
var TapeColors = []string{"bg-rose-400", "bg-sky-400", "bg-lime-400", "bg-yellow-400"}

// TapeColor picks the tape strip for image number n.
func TapeColor(n int) string {
	return TapeColors[n%len(TapeColors)]
}

// Rotation returns a stable tilt in [-3, 3] degrees for image number n.
func Rotation(n int) float64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "polaroid-%d", n)
	return float64(h.Sum32()%601)/100 - 3
}
