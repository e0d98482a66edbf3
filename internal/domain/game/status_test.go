package game

import "testing"

func TestStatusFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Status
	}{
		{in: "STATUS_FINAL", want: StatusFinal},
		{in: "STATUS_FINAL_OT", want: StatusFinalOT},
		{in: "STATUS_IN_PROGRESS", want: StatusInProgress},
		{in: "STATUS_HALFTIME", want: StatusHalftime},
		{in: "STATUS_SCHEDULED", want: StatusScheduled},
		{in: "STATUS_RAIN_DELAY", want: StatusScheduled},
		{in: "", want: StatusScheduled},
	}

	for _, tt := range tests {
		if got := StatusFromName(tt.in); got != tt.want {
			t.Fatalf("StatusFromName(%q) got=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestStatus_ShowsScore(t *testing.T) {
	t.Parallel()

	showing := []Status{StatusFinal, StatusFinalOT, StatusInProgress, StatusHalftime}
	for _, s := range showing {
		if !s.ShowsScore() {
			t.Fatalf("expected %q to show a score", s)
		}
	}
	if StatusScheduled.ShowsScore() {
		t.Fatalf("scheduled games must render the placeholder score")
	}
}
