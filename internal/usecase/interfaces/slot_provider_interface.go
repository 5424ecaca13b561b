package interfaces

import (
	"context"
	"time"
)

// ISlotProvider produces the ordered candidate time strings for a date.
// An empty result means nothing is available that day.
type ISlotProvider interface {
	CandidateSlots(ctx context.Context, date time.Time) ([]string, error)
}
