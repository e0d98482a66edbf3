package game

// Status is the lifecycle state of a game.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusHalftime   Status = "halftime"
	StatusFinal      Status = "final"
	StatusFinalOT    Status = "final_overtime"
)

// StatusFromName maps an ESPN status type name to a Status. Names this
// service has not seen before are treated as scheduled.
func StatusFromName(name string) Status {
	switch name {
	case "STATUS_FINAL":
		return StatusFinal
	case "STATUS_FINAL_OT":
		return StatusFinalOT
	case "STATUS_IN_PROGRESS":
		return StatusInProgress
	case "STATUS_HALFTIME":
		return StatusHalftime
	case "STATUS_SCHEDULED":
		return StatusScheduled
	default:
		return StatusScheduled
	}
}

// ESPNName returns the ESPN status type name for the status.
func (s Status) ESPNName() string {
	switch s {
	case StatusFinal:
		return "STATUS_FINAL"
	case StatusFinalOT:
		return "STATUS_FINAL_OT"
	case StatusInProgress:
		return "STATUS_IN_PROGRESS"
	case StatusHalftime:
		return "STATUS_HALFTIME"
	default:
		return "STATUS_SCHEDULED"
	}
}

// Completed reports whether the game has finished.
func (s Status) Completed() bool {
	return s == StatusFinal || s == StatusFinalOT
}

// Live reports whether the game is currently being played.
func (s Status) Live() bool {
	return s == StatusInProgress || s == StatusHalftime
}

// ShowsScore reports whether a real score should be rendered instead of
// the placeholder dash.
func (s Status) ShowsScore() bool {
	return s.Completed() || s.Live()
}
