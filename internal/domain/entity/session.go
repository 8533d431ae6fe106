package entity

import "github.com/google/uuid"

// Session identifies the authenticated owner of a request.
// It is built per request by the auth middleware and passed explicitly to use cases.
type Session struct {
	OwnerID uuid.UUID
}

// NewSession creates a Session for the given owner.
func NewSession(ownerID uuid.UUID) Session {
	return Session{OwnerID: ownerID}
}

// IsAnonymous reports whether the session carries no owner.
func (s Session) IsAnonymous() bool {
	return s.OwnerID == uuid.Nil
}
