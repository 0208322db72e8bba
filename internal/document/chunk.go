package document

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunk splits text into windows of size words, each starting
// size-overlap words after the previous one. The tail windows may be
// shorter than size.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	step := size - overlap
	if overlap < 0 || step <= 0 {
		step = size
	}

	words := strings.Fields(text)
	var chunks []string
	for i := 0; i < len(words); i += step {
		end := min(i+size, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// ExcerptChars is how much of a document is sent to the generators.
const ExcerptChars = 4000

// Excerpt returns the first n characters of text.
func Excerpt(text string, n int) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}
	return text
}
