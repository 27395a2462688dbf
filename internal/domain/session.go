package domain

import "github.com/google/uuid"

// Session is the explicit session context passed through repository
// operations. Each session owns its own current-user slot in the store,
// so independent sessions over one store never interfere.
type Session struct {
	ID string
}

func NewSession() Session {
	return Session{ID: uuid.NewString()}
}
