package trainer

import "github.com/rocketscienceinc/tictactoe-trainer/internal/entity"

// Session holds the bookkeeping of a single training run.
type Session struct {
	Episodes  int
	Played    int
	WinsX     int
	WinsO     int
	Draws     int
	Completed bool
}

func NewSession(episodes int) *Session {
	return &Session{Episodes: episodes}
}

func (that *Session) record(outcome int) {
	switch outcome {
	case entity.OutcomeXWins:
		that.WinsX++
	case entity.OutcomeOWins:
		that.WinsO++
	default:
		that.Draws++
	}

	that.Played++
}

func (that *Session) done() bool {
	return that.Played >= that.Episodes
}

func (that *Session) progress(final bool) Progress {
	var percent float64
	if that.Episodes > 0 {
		percent = float64(that.Played) / float64(that.Episodes) * 100
	}

	return Progress{
		Episode: that.Played,
		Total:   that.Episodes,
		Percent: percent,
		WinsX:   that.WinsX,
		WinsO:   that.WinsO,
		Draws:   that.Draws,
		Final:   final,
	}
}
