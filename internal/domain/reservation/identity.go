package reservation

import (
	"github.com/jihedaidrive/razor-spark-book/internal/httperr"
	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// Actor is the resolved caller identity for one request. The authorization
// gate lives here, evaluated once per operation instead of inline per
// handler.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsZero() bool {
	return a.ID == ""
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) Owns(r *models.Reservation) bool {
	return r.ClientID != "" && r.ClientID == a.ID
}

// AuthorizeTransition decides whether the actor may request the given status
// change. Staff may perform any legal transition; a client may only cancel
// their own pending reservation. The target's existence is not echoed back
// beyond "not authorized".
func AuthorizeTransition(a Actor, r *models.Reservation, to Status) error {
	if a.IsZero() {
		return httperr.ErrBusiness("unauthenticated")
	}
	if a.IsAdmin() {
		return nil
	}

	if !a.Owns(r) {
		return httperr.ErrBusiness("not_authorized")
	}
	if to != StatusCancelled || Status(r.Status) != StatusPending {
		return httperr.ErrBusiness("not_authorized")
	}
	return nil
}
