package shelfinfoview

import "time"

const statusInterval = 30 * time.Second

// Msg carries a fresh round of shelf statistics.
type Msg struct {
	Books     int
	Words     int
	Positions int
	Err       error
}

// TickMsg schedules the next statistics refresh.
type TickMsg struct{}

// SpinnerTickMsg advances the loading spinner while the first scan runs.
type SpinnerTickMsg struct{}
