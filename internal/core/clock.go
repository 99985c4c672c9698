package core

import "time"

// Clock supplies the current time for expiration checks.
//
// The default implementation reads the wall clock. Tests inject their own
// Clock to step time deterministically instead of sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
