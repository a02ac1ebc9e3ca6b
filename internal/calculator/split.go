package calculator

import (
	"fmt"
)

// Portion is one participant's part of a split, in cents.
type Portion struct {
	UserID int64
	Cents  int64
}

// SplitEqually divides totalCents among participants.
//
// Every participant gets totalCents / n. The remainder r = totalCents % n is
// handed out one cent each to the first r participants, in the order given,
// so the portions always sum to totalCents exactly.
//
// Example: 10000 cents among 3 -> 3334, 3333, 3333.
func SplitEqually(totalCents int64, participants []int64) ([]Portion, error) {
	if totalCents <= 0 {
		return nil, fmt.Errorf("total must be positive")
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}

	n := int64(len(participants))
	base := totalCents / n
	remainder := totalCents % n

	portions := make([]Portion, len(participants))
	for i, userID := range participants {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		portions[i] = Portion{UserID: userID, Cents: cents}
	}
	return portions, nil
}
