package segment

import (
	"strings"
	"testing"
)

func TestPages(t *testing.T) {
	pages := Pages("page one\fpage two\fpage three")
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	if pages[1] != "page two" {
		t.Errorf("page 2: got %q", pages[1])
	}
}

func TestPages_NoFormFeed(t *testing.T) {
	pages := Pages("single page text")
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
}

func TestFirstSection(t *testing.T) {
	text := "TITLE BLOCK\nPROJECT: X\fsecond page"
	got := FirstSection(text, 1000)
	if got != "TITLE BLOCK\nPROJECT: X" {
		t.Errorf("got %q", got)
	}
}

func TestFirstSection_Truncates(t *testing.T) {
	text := strings.Repeat("a", 500)
	got := FirstSection(text, 100)
	if len(got) != 100 {
		t.Errorf("got %d chars, want 100", len(got))
	}
}

func TestFirstSection_EmptyFirstPage(t *testing.T) {
	text := "\fcontent on the second page"
	got := FirstSection(text, 1000)
	if got != "content on the second page" {
		t.Errorf("got %q", got)
	}
}

func TestSplit_PageMarkers(t *testing.T) {
	text := "first page content\fsecond page content"
	chunks, err := Split(text, 500, 20)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Page != 1 || chunks[1].Page != 2 {
		t.Errorf("pages: got %d, %d, want 1, 2", chunks[0].Page, chunks[1].Page)
	}
	if chunks[0].Index != 0 || chunks[1].Index != 1 {
		t.Errorf("indexes: got %d, %d, want 0, 1", chunks[0].Index, chunks[1].Index)
	}
}

func TestSplit_LongPage(t *testing.T) {
	// A page well past the chunk size must produce multiple chunks, each
	// within the size bound and all on page 1.
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("concrete reinforcement schedule line item with bar sizes\n")
	}
	chunks, err := Split(sb.String(), 500, 20)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want several", len(chunks))
	}
	for i, c := range chunks {
		if len(c.Text) > 500 {
			t.Errorf("chunk %d: %d chars exceeds size 500", i, len(c.Text))
		}
		if c.Page != 1 {
			t.Errorf("chunk %d: page %d, want 1", i, c.Page)
		}
		if c.Index != i {
			t.Errorf("chunk %d: index %d", i, c.Index)
		}
	}
}

func TestSplit_SkipsBlankPages(t *testing.T) {
	text := "content\f   \fmore content"
	chunks, err := Split(text, 500, 20)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[1].Page != 3 {
		t.Errorf("second chunk page: got %d, want 3", chunks[1].Page)
	}
}

func TestSplit_InvalidParams(t *testing.T) {
	if _, err := Split("text", 0, 0); err == nil {
		t.Error("expected error for zero chunk size")
	}
	if _, err := Split("text", 100, 100); err == nil {
		t.Error("expected error for overlap >= size")
	}
	if _, err := Split("text", 100, -1); err == nil {
		t.Error("expected error for negative overlap")
	}
}
