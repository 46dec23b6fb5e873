package metadata

import "testing"

func TestMerge_PriorityOrder(t *testing.T) {
	content := Metadata{
		Project: "Content Project",
		Phase:   "Content Phase",
	}
	path := Metadata{
		Project:      "Path Project",
		Discipline:   "Structural",
		DocumentType: DocTypeDrawing,
	}
	ai := Metadata{
		Project:     "AI Project",
		DrawingType: "Plans",
	}

	merged := Merge(content, path, ai)

	// Later sources win field by field.
	if merged.Project != "AI Project" {
		t.Errorf("Project: got %q, want AI Project", merged.Project)
	}
	// The path layer overwrites content but keeps what it never set.
	if merged.Phase != "Content Phase" {
		t.Errorf("Phase: got %q, want Content Phase", merged.Phase)
	}
	if merged.Discipline != "Structural" {
		t.Errorf("Discipline: got %q, want Structural", merged.Discipline)
	}
	if merged.DrawingType != "Plans" {
		t.Errorf("DrawingType: got %q, want Plans", merged.DrawingType)
	}
	if merged.DocumentType != DocTypeDrawing {
		t.Errorf("DocumentType: got %q, want Drawing", merged.DocumentType)
	}
}

func TestMerge_EmptyNeverOverwrites(t *testing.T) {
	base := Metadata{
		Project:    "Lift Station 46",
		Discipline: "Electrical",
		Revision:   "C",
	}
	merged := Merge(base, Metadata{})
	if merged != base {
		t.Errorf("got %+v, want %+v", merged, base)
	}
}

func TestMerge_NoSources(t *testing.T) {
	if m := Merge(); !m.IsEmpty() {
		t.Errorf("Merge() = %+v, want empty", m)
	}
}

func TestField(t *testing.T) {
	m := Metadata{
		Project:       "P",
		Discipline:    "D",
		DrawingNumber: "N",
		BuildingArea:  "46",
	}
	if got := m.Field("project"); got != "P" {
		t.Errorf("Field(project): got %q", got)
	}
	if got := m.Field("buildingArea"); got != "46" {
		t.Errorf("Field(buildingArea): got %q", got)
	}
	if got := m.Field("source"); got != "" {
		t.Errorf("Field(source): got %q, want empty", got)
	}
	if got := m.Field("bogus"); got != "" {
		t.Errorf("Field(bogus): got %q, want empty", got)
	}
}
