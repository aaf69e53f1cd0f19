package apperror

import "errors"

var (
	ErrInvalidMove         = errors.New("invalid move")
	ErrOutOfBounds         = errors.New("move is out of bounds")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrNoLegalMoves        = errors.New("no legal moves")
	ErrGameFinished        = errors.New("game is already finished")
	ErrTrainingInProgress  = errors.New("training is in progress")
	ErrInvalidEpisodeCount = errors.New("invalid episode count")
	ErrProgressNotFound    = errors.New("training progress not found")
)
