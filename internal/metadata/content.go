package metadata

import (
	"regexp"
	"strings"
)

// fieldRule binds one title-block pattern to the field it populates. Rules
// for the same field are tried in order; the first match wins and later
// rules for that field are skipped.
type fieldRule struct {
	field   string
	pattern *regexp.Regexp
	// normalize optionally rewrites the captured value before it is stored.
	normalize func(string) string
}

// contentRules is the ordered title-block extraction table. New label
// conventions are added here, not in control flow.
var contentRules = []fieldRule{
	{field: "project", pattern: regexp.MustCompile(`(?im)^\s*PROJECT\s*:\s*(.+)$`)},
	{field: "project", pattern: regexp.MustCompile(`(?im)^\s*PROJECT\s+NAME\s*:\s*(.+)$`)},
	{field: "project", pattern: regexp.MustCompile(`(?im)^\s*PROJ(?:ECT)?\s+TITLE\s*:\s*(.+)$`)},

	{field: "phase", pattern: regexp.MustCompile(`(?im)^\s*PHASE\s*:\s*(.+)$`)},
	{field: "phase", pattern: regexp.MustCompile(`(?im)\bISSUED\s+FOR\s+([A-Z][A-Z ]+[A-Z])`)},
	{field: "phase", pattern: regexp.MustCompile(`(?im)^\s*STATUS\s*:\s*(.+)$`)},

	{field: "revision", pattern: regexp.MustCompile(`(?im)\bREV(?:ISION)?\s*:\s*([A-Za-z0-9]+)`)},
	{field: "revision", pattern: regexp.MustCompile(`(?im)\bREV\.\s*([A-Za-z0-9]+)`)},

	{field: "discipline", pattern: regexp.MustCompile(`(?im)^\s*DISCIPLINE\s*:\s*(.+)$`)},
	{
		field:     "discipline",
		pattern:   regexp.MustCompile(`(?i)\b(STRUCTURAL|ARCHITECTURAL|MECHANICAL|ELECTRICAL|CIVIL|PLUMBING)\s+DRAWINGS?\b`),
		normalize: titleCase,
	},

	{
		field:     "drawingType",
		pattern:   regexp.MustCompile(`(?i)\b(PLAN|ELEVATION|SECTION|DETAIL|SCHEDULE|DIAGRAM)S?\b`),
		normalize: drawingTypeBand,
	},

	{field: "drawingNumber", pattern: regexp.MustCompile(`(?im)\b(?:DWG\.?\s*NO\.?|DRAWING\s+NUMBER)\s*:?\s*([A-Za-z0-9][A-Za-z0-9.\-]*)`)},
}

// FromContent derives metadata from a document's extracted text using the
// ordered pattern table. Fields without a matching pattern stay unset.
func FromContent(text string) Metadata {
	var meta Metadata
	for _, rule := range contentRules {
		if meta.Field(rule.field) != "" {
			continue
		}
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		if value == "" {
			continue
		}
		if rule.normalize != nil {
			value = rule.normalize(value)
			if value == "" {
				continue
			}
		}
		setField(&meta, rule.field, value)
	}
	return meta
}

func setField(meta *Metadata, field, value string) {
	switch field {
	case "project":
		meta.Project = value
	case "phase":
		meta.Phase = value
	case "revision":
		meta.Revision = value
	case "discipline":
		meta.Discipline = value
	case "drawingType":
		meta.DrawingType = value
	case "drawingNumber":
		meta.DrawingNumber = value
	}
}

// titleCase rewrites an all-caps token like "STRUCTURAL" as "Structural".
func titleCase(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// drawingTypeBand maps a bare title-block token to the sheet-band vocabulary
// the path extractor uses, so merged records share one naming scheme.
func drawingTypeBand(token string) string {
	switch strings.ToUpper(token) {
	case "PLAN":
		return "Plans"
	case "ELEVATION":
		return "Elevations"
	case "SECTION":
		return "Sections"
	case "DETAIL":
		return "Details"
	case "SCHEDULE":
		return "Schedules"
	case "DIAGRAM":
		return "Diagrams"
	}
	return ""
}
