package brochure

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/labstack/gommon/log"

	"github.com/littlewonders/playlearn/content"
)

// Options controls where assets come from and what the document links to.
type Options struct {
	AssetDir string // static directory holding stage photos; empty skips photos
	SiteURL  string // printed on every page footer
}

const (
	pageW       = 210.0
	marginX     = 15.0
	contentW    = pageW - 2*marginX
	pageBottom  = 270.0
	stagePhotoW = 55.0
	qrSize      = 40.0
)

type writer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Build renders the prospectus as an A4 PDF. Missing or unreadable photos are
// logged and left out; they never fail the document.
func Build(c *content.Content, opts Options) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 15, marginX)
	pdf.SetAutoPageBreak(true, 20)
	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	footer := c.Site.Name
	if opts.SiteURL != "" {
		footer += "  |  " + opts.SiteURL
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, w.tr(fmt.Sprintf("%s  |  page %d", footer, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	w.cover(c)
	w.heading("Regular Programs")
	for _, s := range c.Programs.Regular {
		w.line(fmt.Sprintf("%s  (%s)  %s", s.Title, s.Time, s.Sub))
	}
	w.stages(c.Programs.Stages, opts.AssetDir)
	w.heading("Skill Boosters")
	for _, b := range c.Programs.Boosters {
		w.line(fmt.Sprintf("%s  -  %s", b.Title, b.Duration))
	}
	w.heading("After School")
	for _, a := range c.Programs.AfterSchool {
		w.line(a.Title)
	}
	w.heading("Therapy Services")
	for _, s := range c.Programs.Services {
		w.line(s.Title)
	}
	w.heading("Our Branches")
	for _, b := range c.Branches {
		w.branch(b)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("brochure: render pdf: %w", err)
	}
	return out.Bytes(), nil
}

func (w *writer) cover(c *content.Content) {
	pdf := w.pdf
	top := pdf.GetY()
	textW := contentW
	if c.Site.AdmissionURL != "" {
		png, err := QRCode(c.Site.AdmissionURL, 512)
		if err != nil {
			log.Warnf("brochure: admission qr: %v", err)
		} else {
			opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
			pdf.RegisterImageOptionsReader("admission-qr", opt, bytes.NewReader(png))
			pdf.ImageOptions("admission-qr", pageW-marginX-qrSize, top, qrSize, qrSize, false, opt, 0, "")
			textW -= qrSize + 5
		}
	}

	pdf.SetTextColor(63, 98, 18)
	pdf.SetFont("Arial", "B", 26)
	pdf.CellFormat(textW, 12, w.tr(c.Site.Name), "", 1, "L", false, 0, "")
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(textW, 8, w.tr(c.Site.Tagline), "", 1, "L", false, 0, "")
	if c.Site.Enrollment != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetTextColor(190, 18, 60)
		pdf.CellFormat(textW, 7, w.tr(c.Site.Enrollment), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(textW, 5.5, w.tr(c.Site.Description), "", "L", false)
	if c.Site.AdmissionURL != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(textW, 5, w.tr("Apply online: "+c.Site.AdmissionURL), "", "L", false)
	}
	if y := top + qrSize + 4; pdf.GetY() < y {
		pdf.SetY(y)
	}
	for _, m := range c.Mission {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, w.tr(m.Number+"  "+m.Title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, w.tr(m.Description), "", "L", false)
	}
}

func (w *writer) heading(title string) {
	pdf := w.pdf
	if pdf.GetY() > pageBottom-20 {
		pdf.AddPage()
	}
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(63, 98, 18)
	pdf.CellFormat(0, 9, w.tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(40, 40, 40)
}

func (w *writer) line(text string) {
	w.pdf.SetFont("Arial", "", 11)
	w.pdf.CellFormat(0, 6.5, w.tr("- "+text), "", 1, "L", false, 0, "")
}

// stages lays the learning path out two per row with photos when available.
func (w *writer) stages(stages []content.Stage, assetDir string) {
	pdf := w.pdf
	w.heading("Learning Path")
	col := 0
	rowTop := pdf.GetY()
	rowH := 0.0
	for i, s := range stages {
		var ph photo
		var err error
		if assetDir == "" {
			err = fmt.Errorf("no asset directory")
		} else {
			ph, err = loadPhoto(assetDir, s.Image)
		}
		h := 8.0
		if err != nil {
			if assetDir != "" {
				log.Warnf("brochure: skip photo %s: %v", s.Image, err)
			}
		} else {
			h += stagePhotoW * float64(ph.height) / float64(ph.width)
		}

		if col == 0 && rowTop+h > pageBottom {
			pdf.AddPage()
			rowTop = pdf.GetY()
		}
		x := marginX + float64(col)*(contentW/2)
		y := rowTop
		if err == nil {
			name := fmt.Sprintf("stage-%d", i)
			opt := gofpdf.ImageOptions{ImageType: "JPG"}
			pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(ph.data))
			pdf.ImageOptions(name, x, y, stagePhotoW, 0, false, opt, 0, "")
			y += h - 8
		}
		pdf.SetXY(x, y+1)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(contentW/2, 6, w.tr(s.Title), "", 0, "L", false, 0, "")
		if h > rowH {
			rowH = h
		}
		col++
		if col == 2 || i == len(stages)-1 {
			col = 0
			rowTop += rowH + 4
			rowH = 0
			pdf.SetXY(marginX, rowTop)
		}
	}
}

func (w *writer) branch(b content.Branch) {
	pdf := w.pdf
	if pdf.GetY() > pageBottom-30 {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, w.tr(b.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, w.tr(b.Address), "", "L", false)
	if len(b.Phones) > 0 {
		pdf.CellFormat(0, 5, w.tr("Phone: "+strings.Join(b.Phones, ", ")), "", 1, "L", false, 0, "")
	}
	if b.Email != "" {
		pdf.CellFormat(0, 5, w.tr("Email: "+b.Email), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}
