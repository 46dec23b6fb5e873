package extract

import "context"

// PageImage is one extracted page or region image from a source document.
type PageImage struct {
	ImagePath string
	Source    string
	Page      int
}

// ImageStrategy extracts page images and produces the textual description
// that stands in for the pixels at embedding time. Implementations are
// swappable; the retrieval contract does not change when a real pipeline
// replaces the no-op default.
type ImageStrategy interface {
	// ExtractImages renders page/region images for the document at path.
	ExtractImages(ctx context.Context, path string) ([]PageImage, error)

	// Describe returns a textual description of the image, used as the
	// embedding input.
	Describe(ctx context.Context, img PageImage) (string, error)
}

// NoopImages is the default strategy: no images are extracted, so the image
// collection is never seeded and image search reports itself unavailable.
type NoopImages struct{}

func (NoopImages) ExtractImages(context.Context, string) ([]PageImage, error) {
	return nil, nil
}

func (NoopImages) Describe(context.Context, PageImage) (string, error) {
	return "", nil
}
