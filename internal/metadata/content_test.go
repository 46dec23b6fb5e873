package metadata

import "testing"

func TestFromContent_TitleBlock(t *testing.T) {
	text := `LIFT STATION 46 REHABILITATION
PROJECT: Lift Station 46
PHASE: Construction Documents
DWG. NO. S-46-101
REV: B
STRUCTURAL DRAWINGS
FOUNDATION PLAN
`
	meta := FromContent(text)

	if meta.Project != "Lift Station 46" {
		t.Errorf("Project: got %q, want Lift Station 46", meta.Project)
	}
	if meta.Phase != "Construction Documents" {
		t.Errorf("Phase: got %q, want Construction Documents", meta.Phase)
	}
	if meta.DrawingNumber != "S-46-101" {
		t.Errorf("DrawingNumber: got %q, want S-46-101", meta.DrawingNumber)
	}
	if meta.Revision != "B" {
		t.Errorf("Revision: got %q, want B", meta.Revision)
	}
	if meta.Discipline != "Structural" {
		t.Errorf("Discipline: got %q, want Structural", meta.Discipline)
	}
	if meta.DrawingType != "Plans" {
		t.Errorf("DrawingType: got %q, want Plans", meta.DrawingType)
	}
}

func TestFromContent_FirstMatchWins(t *testing.T) {
	text := `PROJECT: Primary Name
PROJECT NAME: Secondary Name
`
	meta := FromContent(text)
	if meta.Project != "Primary Name" {
		t.Errorf("Project: got %q, want Primary Name", meta.Project)
	}
}

func TestFromContent_IssuedFor(t *testing.T) {
	meta := FromContent("SHEET S-101\nISSUED FOR CONSTRUCTION\n")
	if meta.Phase != "CONSTRUCTION" {
		t.Errorf("Phase: got %q, want CONSTRUCTION", meta.Phase)
	}
}

func TestFromContent_DrawingTypeNormalized(t *testing.T) {
	cases := map[string]string{
		"TYPICAL WALL SECTIONS": "Sections",
		"DOOR SCHEDULE":         "Schedules",
		"SINGLE LINE DIAGRAM":   "Diagrams",
		"SITE PLAN":             "Plans",
		"NORTH ELEVATION":       "Elevations",
		"CONNECTION DETAILS":    "Details",
	}
	for text, want := range cases {
		meta := FromContent(text)
		if meta.DrawingType != want {
			t.Errorf("%q: DrawingType got %q, want %q", text, meta.DrawingType, want)
		}
	}
}

func TestFromContent_Empty(t *testing.T) {
	meta := FromContent("no recognizable labels in this text")
	if !meta.IsEmpty() {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}

func TestFromContent_WhitespaceValueIgnored(t *testing.T) {
	meta := FromContent("PROJECT:   \nPHASE: Design\n")
	if meta.Project != "" {
		t.Errorf("Project: got %q, want unset for blank value", meta.Project)
	}
	if meta.Phase != "Design" {
		t.Errorf("Phase: got %q, want Design", meta.Phase)
	}
}
