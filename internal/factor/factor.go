// Package factor normalizes raw per-team statistics into comparable
// signed differentials, one per scoring factor. Every differential is
// expressed as "home advantage over away" on a common [-1, 1] scale
// regardless of the factor's native units.
package factor

// ID identifies a scoring factor.
type ID string

// Core factors. Six are always computed; the goalie factor exists only
// when both confirmed starters resolved, and head-to-head only when the
// clubs have already met this season.
const (
	HomeIce      ID = "home_ice"
	Last10       ID = "last_10"
	SeasonRecord ID = "season_record"
	Goalie       ID = "goalie"
	SpecialTeams ID = "special_teams"
	HeadToHead   ID = "head_to_head"
	Shots        ID = "shots"
)

// Supplemental factors, disabled unless given a weight.
const (
	GoalDiff ID = "goal_diff"
	Injury   ID = "injury"
)

// CoreIDs returns the seven core factor identities in canonical order.
func CoreIDs() []ID {
	return []ID{HomeIce, Last10, SeasonRecord, Goalie, SpecialTeams, HeadToHead, Shots}
}

// AllIDs returns every known factor identity in canonical order.
func AllIDs() []ID {
	return append(CoreIDs(), GoalDiff, Injury)
}

// Differential is a tagged optional: a factor is either Present with a
// signed differential or Absent. Absent is distinct from a real zero
// differential; an absent factor is excluded from the weighted sum and
// the remaining weights are rescaled.
type Differential struct {
	value   float64
	present bool
}

// Present wraps a computed differential.
func Present(value float64) Differential {
	return Differential{value: value, present: true}
}

// Absent marks a factor that could not be computed.
func Absent() Differential {
	return Differential{}
}

// IsPresent reports whether the factor was computed.
func (d Differential) IsPresent() bool {
	return d.present
}

// Value returns the differential and whether it is present.
func (d Differential) Value() (float64, bool) {
	return d.value, d.present
}

// Set holds the per-factor differentials for one game.
type Set struct {
	slots map[ID]Differential
}

// NewSet creates an empty factor set.
func NewSet() *Set {
	return &Set{slots: make(map[ID]Differential)}
}

// Put stores a factor's differential.
func (s *Set) Put(id ID, d Differential) {
	s.slots[id] = d
}

// Get returns the differential for a factor. Unknown factors read as
// Absent.
func (s *Set) Get(id ID) Differential {
	return s.slots[id]
}

// PresentCount returns how many factors were computed.
func (s *Set) PresentCount() int {
	n := 0
	for _, d := range s.slots {
		if d.present {
			n++
		}
	}
	return n
}

// Clamp bounds a differential to [-1, 1] so a single extreme factor
// cannot dominate the aggregate.
func Clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
