package service

import "time"

// nowFrom returns f() in UTC, or the wall clock when f is nil. Services
// carry an optional Now field so tests can pin time.
func nowFrom(f func() time.Time) time.Time {
	if f != nil {
		return f().UTC()
	}
	return time.Now().UTC()
}
