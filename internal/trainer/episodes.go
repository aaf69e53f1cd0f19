package trainer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
)

// ParseEpisodeCount validates a user supplied number of training games.
func ParseEpisodeCount(input string) (int, error) {
	episodes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidEpisodeCount, input)
	}

	if episodes < 0 {
		return 0, fmt.Errorf("%w: %d is negative", apperror.ErrInvalidEpisodeCount, episodes)
	}

	return episodes, nil
}
