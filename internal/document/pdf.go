package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const family = "report"

// PDF renders an A4 document with the same layout as DOCX.
func (r *Renderer) PDF(text, from, to string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 10)
	pdf.SetCreationDate(r.clock.Now())
	pdf.SetModificationDate(r.clock.Now())

	setFont := r.fonts(pdf)
	tr := func(s string) string { return s }
	if r.fontPath == "" {
		// Core fonts are cp1252; runes outside it print as dots.
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()

	setFont("B", 18)
	pdf.MultiCell(0, 9, tr(title), "", "C", false)
	pdf.Ln(4)

	setFont("I", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(periodFmt, from, to)), "", "C", false)
	pdf.Ln(8)

	setFont("", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range paragraphs(text) {
		pdf.MultiCell(0, 5.5, tr(line), "", "L", false)
		pdf.Ln(2)
	}

	pdf.AddPage()
	setFont("I", 9)
	pdf.SetTextColor(153, 153, 153)
	pdf.MultiCell(0, 5, tr(footerText+"\n"+r.stamp()), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fonts registers the configured TTF and returns a setter that picks it, or
// the core Helvetica family when no font file is configured.
func (r *Renderer) fonts(pdf *fpdf.Fpdf) func(style string, size float64) {
	if r.fontPath == "" {
		return func(style string, size float64) { pdf.SetFont("Helvetica", style, size) }
	}
	// One file serves every style; fpdf needs each registered separately.
	for _, style := range []string{"", "B", "I"} {
		pdf.AddUTF8Font(family, style, r.fontPath)
	}
	return func(style string, size float64) { pdf.SetFont(family, style, size) }
}
