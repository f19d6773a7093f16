package booking

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
)

// Role selects whose bookings a listing is about: the bookings a user made,
// or the bookings on items a user owns.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)

// subjectColumn returns the column the subject id is matched against. The
// predicate construction is shared across roles; only this column differs.
func (r Role) subjectColumn() string {
	if r == RoleOwner {
		return "i.owner_id"
	}
	return "b.booker_id"
}

// State is a temporal/status filter on booking listings. Each state resolves
// to one declarative predicate relative to the query time.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateCurrent  State = "CURRENT"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState resolves a client-supplied state string. Unknown values fail
// with ErrUnsupportedState: a bad enum is a client-input problem, not a
// missing resource.
func ParseState(s string) (State, error) {
	switch State(strings.ToUpper(s)) {
	case StateAll, StatePast, StateFuture, StateCurrent, StateWaiting, StateRejected:
		return State(strings.ToUpper(s)), nil
	case "":
		return StateAll, nil
	default:
		return "", ErrUnsupportedState
	}
}

// predicate returns the filter for the state relative to now, or nil for ALL.
//
//	PAST     end < now
//	FUTURE   start > now
//	CURRENT  start < now AND end > now
//	WAITING  status = WAITING
//	REJECTED status = REJECTED
func (s State) predicate(now time.Time) squirrel.Sqlizer {
	switch s {
	case StatePast:
		return squirrel.Lt{"b.end_time": now}
	case StateFuture:
		return squirrel.Gt{"b.start_time": now}
	case StateCurrent:
		return squirrel.And{
			squirrel.Lt{"b.start_time": now},
			squirrel.Gt{"b.end_time": now},
		}
	case StateWaiting:
		return squirrel.Eq{"b.status": StatusWaiting}
	case StateRejected:
		return squirrel.Eq{"b.status": StatusRejected}
	default:
		return nil
	}
}
