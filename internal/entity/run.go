package entity

import "time"

// Run summarises a finished training run. Learned values are not part of it.
type Run struct {
	ID         int64     `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Episodes   int       `json:"episodes"`
	Played     int       `json:"played"`
	WinsX      int       `json:"wins_x"`
	WinsO      int       `json:"wins_o"`
	Draws      int       `json:"draws"`
	Completed  bool      `json:"completed"`
}
