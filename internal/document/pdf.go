package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the plain text of every page. The page count is
// the number of pages in the file, including pages without text.
func extractPDF(_ string, r io.Reader) (text string, pages int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}

	// The parser panics on some malformed files.
	defer func() {
		if p := recover(); p != nil {
			text, pages, err = "", 0, fmt.Errorf("malformed pdf: %v", p)
		}
	}()

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	pages = rd.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		if content = strings.TrimSpace(content); content != "" {
			b.WriteString(content)
			b.WriteString("\n\n")
		}
	}
	return b.String(), pages, nil
}
