// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used to
// find day boundaries for dashboard windows.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, initializing the default if needed.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00 of t's business day, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// DaysAgoStartUTC returns the start of the business day n days before t.
func DaysAgoStartUTC(t time.Time, n int) time.Time {
	bizTime := t.In(Location()).AddDate(0, 0, -n)
	return StartOfDayUTC(bizTime)
}
