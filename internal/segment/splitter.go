package segment

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// Chunk is one embedding-ready text window. Page and Index locate the chunk
// inside its source document and survive metadata enrichment untouched.
type Chunk struct {
	Text  string
	Page  int // 1-based page the chunk starts on.
	Index int // 0-based chunk index within the document.
}

// Pages splits extracted text on form feed characters, the page boundary
// marker produced by the text extractor.
func Pages(text string) []string {
	return strings.Split(text, "\f")
}

// FirstSection returns the document's first page, truncated to budget
// characters, for AI metadata analysis. If the first page is empty the
// leading budget characters of the whole text are used instead.
func FirstSection(text string, budget int) string {
	pages := Pages(text)
	section := strings.TrimSpace(pages[0])
	if section == "" {
		section = strings.TrimSpace(text)
	}
	if budget > 0 && len(section) > budget {
		section = section[:budget]
	}
	return section
}

// Split chunks extracted text into overlapping fixed-size windows using
// recursive character splitting (paragraph, then line, then space, then
// character). Splitting runs per page so every chunk keeps its page marker.
func Split(text string, size, overlap int) ([]Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("segment: chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("segment: overlap %d must be in [0, %d)", overlap, size)
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(size),
		textsplitter.WithChunkOverlap(overlap),
	)

	var chunks []Chunk
	index := 0
	for p, page := range Pages(text) {
		if strings.TrimSpace(page) == "" {
			continue
		}
		segments, err := splitter.SplitText(page)
		if err != nil {
			return nil, fmt.Errorf("segment: split page %d: %w", p+1, err)
		}
		for _, seg := range segments {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			chunks = append(chunks, Chunk{Text: seg, Page: p + 1, Index: index})
			index++
		}
	}
	return chunks, nil
}
