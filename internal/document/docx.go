package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// extractDOCX reads the paragraphs of word/document.xml. Explicit page
// breaks are counted for the page estimate.
func extractDOCX(_ string, r io.Reader) (string, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open docx archive: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBody {
			body = f
			break
		}
	}
	if body == nil {
		return "", 0, errors.New("docx has no " + docxBody)
	}

	rc, err := body.Open()
	if err != nil {
		return "", 0, err
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

func parseDocumentXML(r io.Reader) (string, int, error) {
	dec := xml.NewDecoder(r)

	var (
		out       strings.Builder
		para      strings.Builder
		inText    bool
		pageBreak int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("parse %s: %w", docxBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				para.WriteByte('\t')
			case "br":
				if attr(t, "type") == "page" {
					pageBreak++
				} else {
					para.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if s := strings.TrimSpace(para.String()); s != "" {
					out.WriteString(s)
					out.WriteByte('\n')
				}
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return out.String(), pageBreak + 1, nil
}

func attr(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
