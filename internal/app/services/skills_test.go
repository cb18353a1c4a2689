package services

import "testing"

func TestApplySkillsAccumulates(t *testing.T) {
	current := map[string]int{"Python": 2, "SQL": 1}

	updated := applySkills(current, []string{"Python", "Go"})

	if updated["Python"] != 3 {
		t.Errorf("Python count = %d, want 3", updated["Python"])
	}
	if updated["SQL"] != 1 {
		t.Errorf("SQL count = %d, want 1", updated["SQL"])
	}
	if updated["Go"] != 1 {
		t.Errorf("Go count = %d, want 1", updated["Go"])
	}
}

func TestApplySkillsDuplicateTagsCountTwice(t *testing.T) {
	updated := applySkills(nil, []string{"Python", "Python"})

	if updated["Python"] != 2 {
		t.Errorf("Python count = %d, want 2", updated["Python"])
	}
}

func TestApplySkillsDoesNotMutateInput(t *testing.T) {
	current := map[string]int{"Python": 1}

	applySkills(current, []string{"Python"})

	if current["Python"] != 1 {
		t.Errorf("input map was mutated: Python = %d, want 1", current["Python"])
	}
}

func TestApplySkillsNilCurrent(t *testing.T) {
	updated := applySkills(nil, nil)

	if updated == nil {
		t.Fatal("expected a non-nil map")
	}
	if len(updated) != 0 {
		t.Errorf("len = %d, want 0", len(updated))
	}
}
