package metadata

// DocumentType classifies the kind of source document.
type DocumentType string

const (
	DocTypeDrawing       DocumentType = "Drawing"
	DocTypeTextDoc       DocumentType = "TextDoc"
	DocTypeSpecification DocumentType = "Specification"
)

// Metadata holds the structured fields describing one construction document.
// A field left as the empty string means "unknown"; extractors never store
// whitespace-only or placeholder values.
type Metadata struct {
	Project       string       `json:"project,omitempty"`
	Discipline    string       `json:"discipline,omitempty"`
	DrawingNumber string       `json:"drawingNumber,omitempty"`
	DrawingType   string       `json:"drawingType,omitempty"`
	Phase         string       `json:"phase,omitempty"`
	DocumentType  DocumentType `json:"documentType,omitempty"`
	Revision      string       `json:"revision,omitempty"`
	BuildingArea  string       `json:"buildingArea,omitempty"`
	SheetNumber   string       `json:"sheetNumber,omitempty"`
}

// FilterFields is the closed set of metadata fields callers may filter on.
var FilterFields = []string{
	"project",
	"discipline",
	"drawingNumber",
	"drawingType",
	"phase",
	"source",
	"buildingArea",
}

// Field returns the value of the named filterable field, or "" if the name
// is not part of the metadata record. The "source" field lives outside
// Metadata and is resolved by the caller.
func (m Metadata) Field(name string) string {
	switch name {
	case "project":
		return m.Project
	case "discipline":
		return m.Discipline
	case "drawingNumber":
		return m.DrawingNumber
	case "drawingType":
		return m.DrawingType
	case "phase":
		return m.Phase
	case "documentType":
		return string(m.DocumentType)
	case "revision":
		return m.Revision
	case "buildingArea":
		return m.BuildingArea
	case "sheetNumber":
		return m.SheetNumber
	}
	return ""
}

// IsEmpty reports whether no field has been set.
func (m Metadata) IsEmpty() bool {
	return m == Metadata{}
}

// Merge combines metadata from multiple sources given in lowest-to-highest
// priority order. Later sources overwrite earlier ones field by field, but
// only with non-empty values. The indexing call site fixes the order as
// content, then path, then AI, so the AI extraction wins every conflict and
// the content patterns are the weakest signal.
func Merge(sources ...Metadata) Metadata {
	var out Metadata
	for _, src := range sources {
		if src.Project != "" {
			out.Project = src.Project
		}
		if src.Discipline != "" {
			out.Discipline = src.Discipline
		}
		if src.DrawingNumber != "" {
			out.DrawingNumber = src.DrawingNumber
		}
		if src.DrawingType != "" {
			out.DrawingType = src.DrawingType
		}
		if src.Phase != "" {
			out.Phase = src.Phase
		}
		if src.DocumentType != "" {
			out.DocumentType = src.DocumentType
		}
		if src.Revision != "" {
			out.Revision = src.Revision
		}
		if src.BuildingArea != "" {
			out.BuildingArea = src.BuildingArea
		}
		if src.SheetNumber != "" {
			out.SheetNumber = src.SheetNumber
		}
	}
	return out
}
