// Package tag defines the logical-time instants that reactions execute at.
package tag

import (
	"fmt"
	"math"
	"time"
)

// Tag is a totally ordered pair (logical time, microstep). Two events with
// the same logical time but different microsteps are still ordered: the
// microstep breaks ties between superdense-time instants that share a
// physical timestamp.
type Tag struct {
	Time     int64 // nanoseconds since the Unix epoch
	Microstep uint32
}

// Zero is the tag of the very first logical instant.
var Zero = Tag{}

// Forever is a tag no real event can reach. As a stop tag it ends a run
// only once the tag advancer itself reports Forever, as rti.Simulator does
// when its event queue is exhausted.
var Forever = Tag{Time: math.MaxInt64, Microstep: math.MaxUint32}

// New builds a Tag from a wall-clock instant and a microstep.
func New(t time.Time, microstep uint32) Tag {
	return Tag{Time: t.UnixNano(), Microstep: microstep}
}

// Compare returns negative, zero, or positive depending on whether a is
// before, equal to, or after b.
func Compare(a, b Tag) int {
	if a.Time != b.Time {
		if a.Time < b.Time {
			return -1
		}
		return 1
	}
	if a.Microstep != b.Microstep {
		if a.Microstep < b.Microstep {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether a happens strictly before b.
func Before(a, b Tag) bool { return Compare(a, b) < 0 }

// After reports whether a happens strictly after b.
func After(a, b Tag) bool { return Compare(a, b) > 0 }

// Equal reports whether a and b denote the same instant.
func Equal(a, b Tag) bool { return a == b }

func (t Tag) String() string {
	return fmt.Sprintf("Tag(t=%dns, microstep=%d)", t.Time, t.Microstep)
}
