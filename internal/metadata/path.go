package metadata

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// AppRootName is the name of the application's own data folder. A "projects"
// path segment followed by this name is not treated as a project name.
const AppRootName = "plansearch"

// disciplineCodes maps the first letter of a drawing number to a discipline.
var disciplineCodes = map[string]string{
	"S": "Structural",
	"C": "Civil",
	"A": "Architectural",
	"M": "Mechanical",
	"E": "Electrical",
	"P": "Plumbing",
	"L": "Landscape",
	"G": "General",
	"D": "Demolition",
	"F": "Fire Protection",
	"T": "Telecommunications",
	"I": "Interiors",
}

// sheetBands maps sheet-number ranges to drawing types. Sheet numbers outside
// every band leave the drawing type unset.
var sheetBands = []struct {
	lo, hi int
	name   string
}{
	{1, 99, "General"},
	{100, 199, "Plans"},
	{200, 299, "Elevations"},
	{300, 399, "Sections"},
	{400, 499, "Details"},
	{500, 599, "Schedules"},
	{600, 699, "Diagrams"},
}

var divisionPrefix = regexp.MustCompile(`(?i)^division\s*0*(\d+)`)

// FromPath derives metadata from a document's storage location and filename
// using positional conventions: the folder taxonomy classifies the document,
// and the drawing-number code segments encode discipline, building area, and
// sheet number. It is deterministic and performs no I/O.
func FromPath(path, defaultProject string) Metadata {
	normalized := filepath.ToSlash(path)
	segments := strings.Split(normalized, "/")
	filename := segments[len(segments)-1]
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	meta := Metadata{
		Project: defaultProject,
		// Placeholder; content or AI extraction may overwrite it later.
		DrawingNumber: base,
	}

	for i, seg := range segments[:len(segments)-1] {
		switch {
		case strings.EqualFold(seg, "Drawings"):
			meta.DocumentType = DocTypeDrawing
		case strings.EqualFold(seg, "TextDocs"):
			meta.DocumentType = DocTypeTextDoc
		case strings.EqualFold(seg, "projects") || strings.EqualFold(seg, "project"):
			if i+1 < len(segments)-1 && !strings.EqualFold(segments[i+1], AppRootName) {
				meta.Project = segments[i+1]
			}
		}
	}

	// A text document named after a CSI MasterFormat division is a
	// specification; the division number fixes its discipline.
	if meta.DocumentType == DocTypeTextDoc {
		if m := divisionPrefix.FindStringSubmatch(base); m != nil {
			meta.DocumentType = DocTypeSpecification
			if n, err := strconv.Atoi(m[1]); err == nil {
				meta.Discipline = csiDiscipline(n)
			}
		}
	}

	if meta.DocumentType == DocTypeDrawing {
		decodeDrawingNumber(base, &meta)
	}

	return meta
}

// csiDiscipline maps a CSI MasterFormat division number to a discipline.
// Division 9 sits inside the broad 1-14 architectural range, so it has to be
// checked first.
func csiDiscipline(division int) string {
	switch {
	case division == 9:
		return "Finishes"
	case division >= 1 && division <= 14:
		return "Architectural"
	case division >= 21 && division <= 23:
		return "Mechanical"
	case division >= 25 && division <= 28:
		return "Electrical"
	case division >= 31 && division <= 35:
		return "Civil"
	default:
		return "General"
	}
}

// decodeDrawingNumber interprets a drawing number of the form
// <discipline>-<area>-<sheet>.
func decodeDrawingNumber(number string, meta *Metadata) {
	if number == "" {
		return
	}

	if d, ok := disciplineCodes[strings.ToUpper(number[:1])]; ok {
		meta.Discipline = d
	}

	parts := strings.Split(number, "-")
	if len(parts) < 3 {
		return
	}
	if area := strings.TrimSpace(parts[1]); area != "" {
		meta.BuildingArea = area
	}
	sheet := strings.TrimSpace(parts[2])
	if sheet == "" {
		return
	}
	meta.SheetNumber = sheet
	if t := sheetDrawingType(sheet); t != "" {
		meta.DrawingType = t
	}
}

// sheetDrawingType maps the leading numeric value of a sheet segment to a
// drawing type band. Non-numeric or out-of-range values return "".
func sheetDrawingType(sheet string) string {
	digits := sheet
	for i, r := range sheet {
		if r < '0' || r > '9' {
			digits = sheet[:i]
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return ""
	}
	for _, band := range sheetBands {
		if n >= band.lo && n <= band.hi {
			return band.name
		}
	}
	return ""
}
