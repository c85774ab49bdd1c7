package ports

import "time"

// Clock supplies the current instant for derived-field stamping (delivery and
// payment dates). Command handlers take a Clock instead of calling time.Now
// directly so tests can pin time; timestamps are never client-supplied.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
