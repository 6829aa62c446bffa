package model

import "github.com/google/uuid"

// Participant identity lives for exactly one connection. A player who
// drops and comes back is a brand new participant.
type Participant struct {
	ID   uuid.UUID
	Name string
}
