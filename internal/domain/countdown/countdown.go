// Package countdown tracks the contest reset target at UTC month
// boundaries and formats durations for display.
package countdown

import (
	"fmt"
	"time"
)

// Time unit constants for formatting.
const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
)

// NextMonthStart returns the first instant of the calendar month after
// now, in UTC. The result is always strictly in the future.
func NextMonthStart(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// Target holds the monotonically advancing reset timestamp. It is not
// safe for concurrent use; the countdown ticker is its only writer.
type Target struct {
	at time.Time
}

// NewTarget seeds a target at the first month boundary after now.
func NewTarget(now time.Time) *Target {
	return &Target{at: NextMonthStart(now)}
}

// At returns the current reset timestamp.
func (t *Target) At() time.Time {
	return t.at
}

// Tick advances the target past now when it has been reached, and
// returns the remaining duration to the (possibly new) target. The
// returned bool reports whether a rollover happened.
func (t *Target) Tick(now time.Time) (time.Duration, bool) {
	rolled := false
	for !now.Before(t.at) {
		t.at = NextMonthStart(t.at)
		rolled = true
	}
	return t.at.Sub(now), rolled
}

// Remaining splits a duration into whole days, hours, minutes and
// seconds, floored and clamped at zero.
func Remaining(d time.Duration) (days, hours, mins, secs int) {
	if d < 0 {
		return 0, 0, 0, 0
	}
	total := int(d / time.Second)
	days = total / (hoursPerDay * minutesPerHour * secondsPerMinute)
	total -= days * hoursPerDay * minutesPerHour * secondsPerMinute
	hours = total / (minutesPerHour * secondsPerMinute)
	total -= hours * minutesPerHour * secondsPerMinute
	mins = total / secondsPerMinute
	secs = total - mins*secondsPerMinute
	return days, hours, mins, secs
}

// FormatClock renders a non-negative duration as HH:MM:SS. Days fold
// into the hour field so long countdowns stay readable on one clock.
func FormatClock(d time.Duration) string {
	days, hours, mins, secs := Remaining(d)
	return fmt.Sprintf("%02d:%02d:%02d", days*hoursPerDay+hours, mins, secs)
}

// FormatHours renders a fractional hour count as DD:HH:MM. Non-positive
// or non-sensical input clamps to "00:00:00".
func FormatHours(h float64) string {
	if h <= 0 || h != h { // h != h filters NaN
		return "00:00:00"
	}
	totalMinutes := int(h * minutesPerHour)
	days := totalMinutes / (hoursPerDay * minutesPerHour)
	totalMinutes -= days * hoursPerDay * minutesPerHour
	hours := totalMinutes / minutesPerHour
	mins := totalMinutes - hours*minutesPerHour
	return fmt.Sprintf("%02d:%02d:%02d", days, hours, mins)
}
