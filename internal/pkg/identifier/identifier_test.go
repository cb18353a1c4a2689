package identifier

import (
	"strings"
	"testing"
)

func TestNewPrefixesInstitutionInitials(t *testing.T) {
	tests := []struct {
		institution string
		wantPrefix  string
	}{
		{"Madras Institute of Technology", "MIOT"},
		{"delhi university", "DU"},
		{"MIT", "M"},
	}

	for _, tt := range tests {
		got := New(tt.institution)
		if !strings.HasPrefix(got, tt.wantPrefix) {
			t.Errorf("New(%q) = %q, want prefix %q", tt.institution, got, tt.wantPrefix)
		}
		if len(got) != len(tt.wantPrefix)+suffixLength {
			t.Errorf("New(%q) = %q, want length %d", tt.institution, got, len(tt.wantPrefix)+suffixLength)
		}
	}
}

func TestNewSuffixIsAlphanumeric(t *testing.T) {
	id := New("Test College")
	suffix := id[len("TC"):]
	for _, c := range suffix {
		if !strings.ContainsRune(randomChars, c) {
			t.Errorf("suffix character %q outside the allowed set", c)
		}
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New("Test College")
		if seen[id] {
			t.Fatalf("duplicate identifier %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
