package usecase

import "github.com/sitebazaar/sitebazaar-api/internal/entity"

// ActorContext carries who is calling. The core never authenticates;
// the HTTP layer (or a test) fills this in and the core only checks
// ownership and the admin bit.
type ActorContext struct {
	UserID  string
	IsAdmin bool
}

// Anonymous is the actor for unauthenticated calls (public interest
// submission, public listing browsing).
var Anonymous = ActorContext{}

func (a ActorContext) Authenticated() bool {
	return a.UserID != "" || a.IsAdmin
}

// CanManage reports whether the actor may view or mutate a listing and
// everything scoped to it (interests, financial history).
func (a ActorContext) CanManage(l *entity.Listing) bool {
	if a.IsAdmin {
		return true
	}
	return a.UserID != "" && a.UserID == l.OwnerID
}

func errNotOwner() *ForbiddenError {
	return &ForbiddenError{Reason: "only the listing owner or an admin may perform this action"}
}

func errNotAdmin() *ForbiddenError {
	return &ForbiddenError{Reason: "only an admin may perform this action"}
}
