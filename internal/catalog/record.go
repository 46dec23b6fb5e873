package catalog

import (
	"fmt"

	"github.com/buildvault/plansearch/internal/metadata"
	"github.com/buildvault/plansearch/internal/segment"
	"github.com/buildvault/plansearch/internal/vectordb"
)

// Record is one catalog entry: a single source document keyed by the SHA-256
// digest of its raw bytes. At most one record exists per hash; a renamed but
// byte-identical file is already indexed.
type Record struct {
	Source   string
	Hash     string
	Meta     metadata.Metadata
	Overview string
}

// Document converts the record into its stored form. The hash doubles as
// the record ID, which makes catalog inserts last-writer-wins per content.
func (r Record) Document() vectordb.Document {
	md := MetadataMap(r.Meta)
	md["source"] = r.Source
	md["hash"] = r.Hash
	return vectordb.Document{
		ID:       r.Hash,
		Content:  r.Overview,
		Metadata: md,
	}
}

// ChunkRecord is one embedding-ready text window plus the metadata it will
// be stored with. Before enrichment it carries only its own location.
type ChunkRecord struct {
	Source string
	Chunk  segment.Chunk
	Meta   metadata.Metadata
}

// Document converts the chunk into its stored form.
func (c ChunkRecord) Document() vectordb.Document {
	md := MetadataMap(c.Meta)
	md["source"] = c.Source
	md["page"] = fmt.Sprintf("%d", c.Chunk.Page)
	md["chunkIndex"] = fmt.Sprintf("%d", c.Chunk.Index)
	return vectordb.Document{
		ID:       fmt.Sprintf("chunk:%s:%d", c.Source, c.Chunk.Index),
		Content:  c.Chunk.Text,
		Metadata: md,
	}
}

// ImageRecord is one extracted page/region image. The textual description
// stands in for the pixels as the embedding input.
type ImageRecord struct {
	ImagePath   string
	Source      string
	Page        int
	Description string
	Meta        metadata.Metadata
}

// Document converts the image record into its stored form.
func (i ImageRecord) Document() vectordb.Document {
	md := MetadataMap(i.Meta)
	md["source"] = i.Source
	md["imagePath"] = i.ImagePath
	md["page"] = fmt.Sprintf("%d", i.Page)
	return vectordb.Document{
		ID:       fmt.Sprintf("image:%s:%d", i.Source, i.Page),
		Content:  i.Description,
		Metadata: md,
	}
}

// MetadataMap flattens metadata into the stored key/value payload, omitting
// absent fields entirely.
func MetadataMap(m metadata.Metadata) map[string]string {
	md := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			md[key] = value
		}
	}
	set("project", m.Project)
	set("discipline", m.Discipline)
	set("drawingNumber", m.DrawingNumber)
	set("drawingType", m.DrawingType)
	set("phase", m.Phase)
	set("documentType", string(m.DocumentType))
	set("revision", m.Revision)
	set("buildingArea", m.BuildingArea)
	set("sheetNumber", m.SheetNumber)
	return md
}
