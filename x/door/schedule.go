package door

import (
	"time"

	"github.com/totegamma/campsite/core"
)

// Schedule is the ordered list of door windows
type Schedule []core.DoorWindow

// Active returns the door open at now.
// windows are half open, so an instant on a shared boundary belongs to the later door.
func (s Schedule) Active(now time.Time) (int, bool) {
	for i, window := range s {
		if !now.Before(window.Start) && now.Before(window.End) {
			return i, true
		}
	}
	return 0, false
}

// Next returns the first door opening after now
func (s Schedule) Next(now time.Time) (int, bool) {
	for i, window := range s {
		if window.Start.After(now) {
			return i, true
		}
	}
	return 0, false
}
