// Package document turns uploaded course material into plain text for the
// generators.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxFileSize is the largest upload accepted.
const MaxFileSize = 10 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrEmptyText         = errors.New("no text could be extracted")
	ErrTooLarge          = errors.New("document exceeds maximum size")
)

// Document is an uploaded file reduced to its text.
type Document struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Text       string    `json:"text,omitempty"`
	WordCount  int       `json:"word_count"`
	CharCount  int       `json:"char_count"`
	PageCount  int       `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Extractor pulls text and a page count out of one file format.
type Extractor interface {
	Extract(name string, r io.Reader) (text string, pages int, err error)
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(name string, r io.Reader) (string, int, error)

func (f ExtractorFunc) Extract(name string, r io.Reader) (string, int, error) {
	return f(name, r)
}

// Processor validates uploads and dispatches them to an Extractor by
// file extension.
type Processor struct {
	extractors map[string]Extractor
	maxSize    int64
	now        func() time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithExtractor registers e for the given extension (without dot).
func WithExtractor(ext string, e Extractor) Option {
	return func(p *Processor) { p.extractors[strings.ToLower(ext)] = e }
}

// WithMaxSize overrides MaxFileSize.
func WithMaxSize(n int64) Option {
	return func(p *Processor) { p.maxSize = n }
}

// WithClock sets the time source for UploadedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// NewProcessor returns a Processor that handles txt, md, docx and pdf.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		extractors: map[string]Extractor{
			"txt":  ExtractorFunc(extractPlain),
			"md":   ExtractorFunc(extractPlain),
			"docx": ExtractorFunc(extractDOCX),
			"pdf":  ExtractorFunc(extractPDF),
		},
		maxSize: MaxFileSize,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Supported reports the registered extensions, sorted.
func (p *Processor) Supported() []string {
	return slices.Sorted(maps.Keys(p.extractors))
}

// Process reads r, extracts its text and computes the document stats.
func (p *Processor) Process(name string, r io.Reader) (*Document, error) {
	ext := Ext(name)
	ex, ok := p.extractors[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, p.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > p.maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, name, p.maxSize)
	}

	text, pages, err := ex.Extract(name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", name, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	return &Document{
		Name:       filepath.Base(name),
		Type:       ext,
		Text:       text,
		WordCount:  len(strings.Fields(text)),
		CharCount:  utf8.RuneCountInString(text),
		PageCount:  max(pages, 1),
		UploadedAt: p.now().UTC(),
	}, nil
}

var defaultProcessor = NewProcessor()

// Process runs the default Processor.
func Process(name string, r io.Reader) (*Document, error) {
	return defaultProcessor.Process(name, r)
}

// Ext returns the lowercased extension of name without the dot.
func Ext(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func extractPlain(_ string, r io.Reader) (string, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(data) {
		return "", 0, errors.New("text is not valid UTF-8")
	}
	text := string(data)
	return text, strings.Count(text, "\f") + 1, nil
}
