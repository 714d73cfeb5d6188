package core

import "time"

// TimeProvider abstracts the clock so log timestamps and deposit
// transaction ids are reproducible in tests.
type TimeProvider interface {
	Now() time.Time
}
