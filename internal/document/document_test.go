package document

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summary = "📊 Итоги недели\n\n  • Иван Петров: сделал <вёрстку> & тесты\nƏli: hesabat hazırladı\n"

func newRenderer() *Renderer {
	loc := time.FixedZone("+04", 4*3600)
	return NewRenderer(clockwork.NewFakeClockAt(time.Date(2026, 10, 16, 0, 0, 5, 0, loc)), loc, "")
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t,
		[]string{"📊 Итоги недели", "  • Иван Петров: сделал <вёрстку> & тесты", "Əli: hesabat hazırladı"},
		paragraphs(summary))
	assert.Empty(t, paragraphs(" \n\n"))
}

func TestDOCX(t *testing.T) {
	data, err := newRenderer().DOCX(summary, "12.10.2026", "16.10.2026")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(content)
	}

	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")
	doc, ok := parts["word/document.xml"]
	require.True(t, ok)

	assert.Contains(t, doc, "Еженедельный отчет / Həftəlik Hesabat")
	assert.Contains(t, doc, "Период / Dövr: 12.10.2026 - 16.10.2026")
	assert.Contains(t, doc, "сделал &lt;вёрстку&gt; &amp; тесты")
	assert.Contains(t, doc, "Əli: hesabat hazırladı")
	assert.Contains(t, doc, `<w:br w:type="page"/>`)
	assert.Contains(t, doc, "16.10.2026 00:00")
}

func TestPDF(t *testing.T) {
	data, err := newRenderer().PDF(summary, "12.10.2026", "16.10.2026")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestPDFMissingFont(t *testing.T) {
	loc := time.UTC
	r := NewRenderer(clockwork.NewFakeClock(), loc, "/nonexistent/font.ttf")
	_, err := r.PDF(summary, "12.10.2026", "16.10.2026")
	assert.Error(t, err)
}
