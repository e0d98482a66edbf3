package game

import (
	"testing"
	"time"
)

func TestParseKickoff_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "rfc3339", in: "2026-08-28T23:00:00Z"},
		{name: "minute precision zulu", in: "2026-08-28T23:00Z"},
		{name: "explicit offset", in: "2026-08-28T19:00:00-04:00"},
		{name: "naive seconds", in: "2026-08-28T23:00:00"},
		{name: "naive minutes", in: "2026-08-28T23:00"},
	}

	want := time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKickoff(tt.in)
			if err != nil {
				t.Fatalf("ParseKickoff(%q) error: %v", tt.in, err)
			}
			if !got.Equal(want) {
				t.Fatalf("ParseKickoff(%q) got=%s want=%s", tt.in, got, want)
			}
			if got.Location() != Eastern() {
				t.Fatalf("kickoff must be converted to Eastern, got %s", got.Location())
			}
		})
	}
}

func TestParseKickoff_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not-a-date", "08/28/2026"} {
		if _, err := ParseKickoff(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
