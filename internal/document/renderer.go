// Package document renders weekly summaries as DOCX and PDF files.
package document

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	title      = "Еженедельный отчет / Həftəlik Hesabat"
	periodFmt  = "Период / Dövr: %s - %s"
	footerText = "Отчет сгенерирован автоматически / Hesabat avtomatik yaradılıb"
	stampFmt   = "02.01.2006 15:04"
)

// Renderer produces both document formats. FontPath points to a TTF with
// Cyrillic and Azerbaijani glyphs for the PDF; without it a core font is used.
type Renderer struct {
	clock    clockwork.Clock
	loc      *time.Location
	fontPath string
}

func NewRenderer(clock clockwork.Clock, loc *time.Location, fontPath string) *Renderer {
	return &Renderer{clock: clock, loc: loc, fontPath: fontPath}
}

func (r *Renderer) stamp() string {
	return r.clock.Now().In(r.loc).Format(stampFmt)
}

// paragraphs splits text into its non-blank lines.
func paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimRight(line, "\r"))
		}
	}
	return out
}
