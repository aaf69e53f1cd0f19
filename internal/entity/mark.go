package entity

type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	EmptyCell Mark = ""
)

// Symbol is the single-character form used in board keys and plain rendering.
func (that Mark) Symbol() string {
	if that == EmptyCell {
		return "-"
	}

	return string(that)
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyCell
	}
}
