package policy

import "github.com/spec-kit/helpdesk-core/domain"

// Reason strings returned by CanOpen. Callers surface them verbatim.
const (
	ReasonAllowed     = "allowed"
	ReasonInactive    = "inactive user"
	ReasonGuestRole   = "guest role cannot open tickets"
	ReasonTooManyOpen = "too many open tickets"
)

// Policy decides whether a user may open a new ticket. It is a pure
// predicate with no side effects.
type Policy struct {
	MaxOpenTickets int
}

// New builds a policy with the given open-ticket ceiling.
func New(maxOpenTickets int) Policy {
	return Policy{MaxOpenTickets: maxOpenTickets}
}

// CanOpen evaluates the gate checks in order, first failure wins: the user
// must be active, must not be a guest, and must hold strictly fewer open
// tickets than the ceiling.
func (p Policy) CanOpen(user domain.User, openTickets int) (bool, string) {
	if !user.Active {
		return false, ReasonInactive
	}
	if user.Role == domain.RoleGuest {
		return false, ReasonGuestRole
	}
	if openTickets >= p.MaxOpenTickets {
		return false, ReasonTooManyOpen
	}
	return true, ReasonAllowed
}
