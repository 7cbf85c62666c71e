package notes

import "testing"

func TestToggleLineChecksAndUnchecks(t *testing.T) {
	content := "[ ] buy milk\n[x] call mom"

	toggled, changed := ToggleLine(content, 0)
	if !changed {
		t.Fatalf("expected first line toggle to report a change")
	}
	if toggled != "[x] buy milk\n[x] call mom" {
		t.Fatalf("unexpected content after checking line 0: %q", toggled)
	}

	toggled, changed = ToggleLine(content, 1)
	if !changed {
		t.Fatalf("expected second line toggle to report a change")
	}
	if toggled != "[ ] buy milk\n[ ] call mom" {
		t.Fatalf("unexpected content after unchecking line 1: %q", toggled)
	}
}

func TestToggleLinePreservesIndentation(t *testing.T) {
	content := "  [ ] indented item"
	toggled, changed := ToggleLine(content, 0)
	if !changed {
		t.Fatalf("expected indented checkbox to toggle")
	}
	if toggled != "  [x] indented item" {
		t.Fatalf("expected leading whitespace preserved, got %q", toggled)
	}
}

func TestToggleLineNoOps(t *testing.T) {
	content := "[ ] buy milk\nplain line"

	tests := []struct {
		name  string
		index int
	}{
		{name: "negative index", index: -1},
		{name: "index past end", index: 2},
		{name: "line without checkbox", index: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := ToggleLine(content, tc.index)
			if changed {
				t.Fatalf("expected no change")
			}
			if got != content {
				t.Fatalf("expected content untouched, got %q", got)
			}
		})
	}
}
