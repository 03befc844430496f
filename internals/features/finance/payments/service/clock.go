package service

import "time"

// Clock lets tests pin "now". Validity checks and membership windows all
// flow from a single Now() read per operation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }
