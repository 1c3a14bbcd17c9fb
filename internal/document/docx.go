package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Font sizes are in half-points.
const (
	sizeTitle  = 36
	sizePeriod = 24
	sizeBody   = 22
	sizeFooter = 18
)

type run struct {
	text   string
	size   int
	bold   bool
	italic bool
}

// DOCX renders a WordprocessingML package: title, period, one paragraph per
// non-blank line of text and a footer on its own page.
func (r *Renderer) DOCX(text, from, to string) ([]byte, error) {
	var body strings.Builder
	writeParagraph(&body, "center", run{text: title, size: sizeTitle, bold: true})
	writeParagraph(&body, "center", run{text: fmt.Sprintf(periodFmt, from, to), size: sizePeriod})
	writeParagraph(&body, "")
	for _, line := range paragraphs(text) {
		writeParagraph(&body, "", run{text: line, size: sizeBody})
	}
	body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
	writeParagraph(&body, "center",
		run{text: footerText, size: sizeFooter, italic: true},
		run{text: "\n" + r.stamp(), size: sizeFooter, italic: true},
	)

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range []struct{ name, data string }{
		{"[Content_Types].xml", contentTypes},
		{"_rels/.rels", packageRels},
		{"word/document.xml", document},
	} {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close: %w", err)
	}
	return buf.Bytes(), nil
}

func writeParagraph(b *strings.Builder, align string, runs ...run) {
	b.WriteString("<w:p>")
	if align != "" {
		fmt.Fprintf(b, `<w:pPr><w:jc w:val="%s"/></w:pPr>`, align)
	}
	for _, r := range runs {
		b.WriteString("<w:r><w:rPr>")
		if r.bold {
			b.WriteString("<w:b/>")
		}
		if r.italic {
			b.WriteString("<w:i/>")
		}
		fmt.Fprintf(b, `<w:sz w:val="%d"/></w:rPr>`, r.size)
		for i, part := range strings.Split(r.text, "\n") {
			if i > 0 {
				b.WriteString("<w:br/>")
			}
			if part == "" {
				continue
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			_ = xml.EscapeText(b, []byte(part))
			b.WriteString("</w:t>")
		}
		b.WriteString("</w:r>")
	}
	b.WriteString("</w:p>")
}
