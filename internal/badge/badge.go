// Package badge renders a registration as a printable one-page PDF
// holding two identical passes split by a cut line.
package badge

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/wb-go/wbf/logger"
)

// A4 portrait, millimetres.
const (
	pageW = 210.0
	pageH = 297.0
)

type Config struct {
	// BannerPath is optional; a missing or unreadable file degrades to
	// a solid banner block with the caption overlaid.
	BannerPath    string
	BannerCaption string
	BottomLabel   string
}

type Data struct {
	PassID       string
	AttendeeName string
	Company      string
	EventName    string
}

// Renderer holds no per-render state and is safe for concurrent use;
// every Render call builds its own document.
type Renderer struct {
	cfg    Config
	banner []byte // pre-decoded banner PNG, nil when degraded
	logger logger.Logger
}

func New(cfg Config, log logger.Logger) *Renderer {
	r := &Renderer{cfg: cfg, logger: log}
	r.banner = loadBanner(cfg.BannerPath, log)
	return r
}

func loadBanner(path string, log logger.Logger) []byte {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("badge banner unavailable, using fallback block",
			logger.String("path", path),
			logger.String("error", err.Error()),
		)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Warn("badge banner not decodable, using fallback block",
			logger.String("path", path),
			logger.String("error", err.Error()),
		)
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// Render produces the badge sheet: two identical badge instances, one
// per half page, plus shared cut guides. Encoder failures degrade to a
// marked placeholder instead of aborting the page.
func (r *Renderer) Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	qrName := r.registerQR(pdf, d.PassID)
	bcName := r.registerBarcode(pdf, d.PassID)
	bannerName := r.registerBanner(pdf)

	r.drawBadge(pdf, 0, d, bannerName, bcName, qrName)
	r.drawBadge(pdf, pageH/2, d, bannerName, bcName, qrName)
	drawGuides(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("emit badge page: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) registerQR(pdf *gofpdf.Fpdf, passID string) string {
	data, err := qrcode.Encode(passID, qrcode.Medium, 384)
	if err != nil {
		r.logger.Warn("qr encode failed, rendering fallback",
			logger.String("pass_id", passID),
			logger.String("error", err.Error()),
		)
		return ""
	}
	pdf.RegisterImageOptionsReader("qr",
		gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	return "qr"
}

func (r *Renderer) registerBarcode(pdf *gofpdf.Fpdf, passID string) string {
	bc, err := code128.Encode(passID)
	if err != nil {
		r.logger.Warn("barcode encode failed, rendering fallback",
			logger.String("pass_id", passID),
			logger.String("error", err.Error()),
		)
		return ""
	}
	scaled, err := barcode.Scale(bc, 800, 200)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return ""
	}
	pdf.RegisterImageOptionsReader("code128",
		gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
	return "code128"
}

func (r *Renderer) registerBanner(pdf *gofpdf.Fpdf) string {
	if r.banner == nil {
		return ""
	}
	pdf.RegisterImageOptionsReader("banner",
		gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(r.banner))
	return "banner"
}

// drawBadge lays out one badge instance with its top edge at the given
// offset. Text has no centered primitive in the composer, so every
// centered run is positioned from its measured width.
func (r *Renderer) drawBadge(pdf *gofpdf.Fpdf, top float64, d Data, bannerName, bcName, qrName string) {
	const (
		bannerX, bannerY, bannerW, bannerH = 15.0, 10.0, 180.0, 32.0
		nameY                              = 60.0
		companyY                           = 72.0
		codesY                             = 82.0
		barcodeX, barcodeW, barcodeH       = 30.0, 75.0, 19.0
		qrX, qrSize                        = 135.0, 32.0
		labelY                             = pageH/2 - 14.0
	)

	if bannerName != "" {
		pdf.ImageOptions(bannerName, bannerX, top+bannerY, bannerW, bannerH,
			false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	} else {
		pdf.SetFillColor(31, 58, 95)
		pdf.Rect(bannerX, top+bannerY, bannerW, bannerH, "F")
		pdf.SetTextColor(255, 255, 255)
		caption := r.cfg.BannerCaption
		if caption == "" {
			caption = d.EventName
		}
		centerText(pdf, caption, "B", 18, top+bannerY+bannerH/2+2)
		pdf.SetTextColor(0, 0, 0)
	}

	centerTextShrink(pdf, strings.ToUpper(d.AttendeeName), "B", 28, top+nameY, bannerW)
	if d.Company != "" {
		centerTextShrink(pdf, strings.ToUpper(d.Company), "", 16, top+companyY, bannerW)
	}

	if bcName != "" {
		pdf.ImageOptions(bcName, barcodeX, top+codesY, barcodeW, barcodeH,
			false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	} else {
		drawCodeFallback(pdf, barcodeX, top+codesY, barcodeW, barcodeH)
	}

	// Pass id in clear text, centered under the barcode.
	pdf.SetFont("Helvetica", "", 10)
	w := pdf.GetStringWidth(d.PassID)
	pdf.Text(barcodeX+barcodeW/2-w/2, top+codesY+barcodeH+5, d.PassID)

	if qrName != "" {
		pdf.ImageOptions(qrName, qrX, top+codesY-3, qrSize, qrSize,
			false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	} else {
		drawCodeFallback(pdf, qrX, top+codesY-3, qrSize, qrSize)
	}

	label := r.cfg.BottomLabel
	if label == "" {
		label = "VISITOR"
	}
	centerText(pdf, label, "B", 36, top+labelY)
}

func centerText(pdf *gofpdf.Fpdf, s, style string, size, y float64) {
	pdf.SetFont("Helvetica", style, size)
	w := pdf.GetStringWidth(s)
	pdf.Text(pageW/2-w/2, y, s)
}

// centerTextShrink steps the font size down until the run fits maxW.
func centerTextShrink(pdf *gofpdf.Fpdf, s, style string, size, y, maxW float64) {
	pdf.SetFont("Helvetica", style, size)
	for size > 8 && pdf.GetStringWidth(s) > maxW {
		size -= 2
		pdf.SetFont("Helvetica", style, size)
	}
	w := pdf.GetStringWidth(s)
	pdf.Text(pageW/2-w/2, y, s)
}

// drawCodeFallback marks a spot where a machine-readable code should
// have been; the badge stays printable even when an encoder fails.
func drawCodeFallback(pdf *gofpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(x, y, w, h, "D")
	pdf.Line(x, y, x+w, y+h)
	pdf.SetFont("Helvetica", "", 6)
	tw := pdf.GetStringWidth("CODE UNAVAILABLE")
	pdf.Text(x+w/2-tw/2, y+h+3, "CODE UNAVAILABLE")
}

// drawGuides draws the shared page furniture: dashed cut lines through
// the page center, rotated captions and a small directional arrow.
func drawGuides(pdf *gofpdf.Fpdf) {
	cx, cy := pageW/2, pageH/2

	pdf.SetDrawColor(130, 130, 130)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{2, 1.5}, 0)
	pdf.Line(0, cy, pageW, cy)
	pdf.Line(cx, 0, cx, pageH)
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetTextColor(130, 130, 130)
	pdf.SetFont("Helvetica", "", 7)

	pdf.Text(cx-28, cy-2, "cut along this line")

	pdf.TransformBegin()
	pdf.TransformRotate(90, cx+3, cy+22)
	pdf.Text(cx+3, cy+22, "fold")
	pdf.TransformEnd()

	// Arrow pointing at the intersection.
	pdf.SetLineWidth(0.3)
	pdf.Line(cx+14, cy+8, cx+4, cy+2)
	pdf.Line(cx+4, cy+2, cx+8, cy+4)
	pdf.Line(cx+4, cy+2, cx+6, cy+6)

	pdf.SetTextColor(0, 0, 0)
}
