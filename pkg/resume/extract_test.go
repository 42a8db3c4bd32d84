package resume

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal docx container in memory.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	fmt.Fprint(w, `<?xml version="1.0"?><w:document><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(w, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	fmt.Fprint(w, `</w:body></w:document>`)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextDocx(t *testing.T) {
	data := buildDocx(t, "Asha Rao", "Skills: Go, Postgres")
	text, err := ExtractText("resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Asha Rao")
	assert.Contains(t, text, "Skills: Go, Postgres")
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}

func TestExtractTextBrokenPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("this is not a pdf"))
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}

func TestExtractTextBrokenDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("this is not a zip"))
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	fmt.Fprint(w, "<w:styles/>")
	require.NoError(t, zw.Close())

	_, err = ExtractText("resume.docx", buf.Bytes())
	assert.ErrorIs(t, err, ErrDocumentUnreadable)
}
