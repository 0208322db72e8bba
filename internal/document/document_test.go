package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestProcess_PlainText(t *testing.T) {
	p := NewProcessor(WithClock(fixedClock))
	doc, err := p.Process("notes/Cours.TXT", strings.NewReader("  La photosynthèse produit de l'oxygène.\fPage deux.  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Cours.TXT" || doc.Type != "txt" {
		t.Fatalf("unexpected name/type: %q %q", doc.Name, doc.Type)
	}
	if doc.WordCount != 7 {
		t.Fatalf("WordCount = %d, want 7", doc.WordCount)
	}
	if doc.CharCount != len([]rune(doc.Text)) {
		t.Fatalf("CharCount = %d, want rune count %d", doc.CharCount, len([]rune(doc.Text)))
	}
	if doc.PageCount != 2 {
		t.Fatalf("PageCount = %d, want 2", doc.PageCount)
	}
	if !doc.UploadedAt.Equal(fixedClock()) {
		t.Fatalf("UploadedAt = %v", doc.UploadedAt)
	}
}

func TestProcess_DOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Chapitre 1</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t xml:space="preserve">La cellule </w:t></w:r><w:r><w:t>vivante</w:t></w:r></w:p>`+
			`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`+
			`<w:p><w:r><w:t>Chapitre 2</w:t></w:r></w:p>`)

	doc, err := Process("bio.docx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Chapitre 1\nLa cellule vivante\nChapitre 2"
	if doc.Text != want {
		t.Fatalf("Text = %q, want %q", doc.Text, want)
	}
	if doc.PageCount != 2 {
		t.Fatalf("PageCount = %d, want 2", doc.PageCount)
	}
}

func TestProcess_DOCXWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.Create("other.xml")
	zw.Close()

	if _, err := Process("broken.docx", &buf); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		opts    []Option
		want    error
	}{
		{"odt unsupported", "cours.odt", "PK", nil, ErrUnsupportedFormat},
		{"no extension", "README", "text", nil, ErrUnsupportedFormat},
		{"blank text", "vide.txt", " \n\t ", nil, ErrEmptyText},
		{"too large", "big.txt", strings.Repeat("a", 11), []Option{WithMaxSize(10)}, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProcessor(tt.opts...).Process(tt.file, strings.NewReader(tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProcess_ExactMaxSizeAccepted(t *testing.T) {
	_, err := NewProcessor(WithMaxSize(10)).Process("ok.txt", strings.NewReader(strings.Repeat("a", 10)))
	if err != nil {
		t.Fatalf("unexpected error at the size limit: %v", err)
	}
}

func TestProcessor_CustomExtractor(t *testing.T) {
	p := NewProcessor(WithExtractor("ODT", ExtractorFunc(func(string, io.Reader) (string, int, error) {
		return "texte extrait", 3, nil
	})))
	doc, err := p.Process("x.odt", strings.NewReader("PK"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.PageCount != 3 || doc.Text != "texte extrait" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if got := strings.Join(p.Supported(), ","); got != "docx,md,odt,pdf,txt" {
		t.Fatalf("Supported() = %s", got)
	}
}

func TestChunk(t *testing.T) {
	words := make([]string, 25)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	text := strings.Join(words, " ")

	chunks := Chunk(text, 10, 2)
	// Windows start every 8 words: 0, 8, 16, 24.
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[1] != "i j k l m n o p q r" {
		t.Fatalf("unexpected second chunk %q", chunks[1])
	}
	if chunks[3] != "y" {
		t.Fatalf("unexpected tail chunk %q", chunks[3])
	}
}

func TestChunk_Defaults(t *testing.T) {
	if got := Chunk("", 10, 2); got != nil {
		t.Fatalf("expected no chunks for empty text, got %q", got)
	}
	if got := Chunk("a b c", 0, 0); len(got) != 1 || got[0] != "a b c" {
		t.Fatalf("default size should keep short text whole, got %q", got)
	}
	// Overlap larger than size falls back to non-overlapping windows.
	if got := Chunk("a b c d", 2, 5); len(got) != 2 {
		t.Fatalf("expected 2 chunks, got %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("énergie", 3); got != "éne" {
		t.Fatalf("Excerpt = %q", got)
	}
	if got := Excerpt("abc", 10); got != "abc" {
		t.Fatalf("short text should be unchanged, got %q", got)
	}
	if got := Excerpt("abc", 0); got != "abc" {
		t.Fatalf("zero limit should keep text, got %q", got)
	}
}
