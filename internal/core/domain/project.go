package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project owns its member-id set. Tasks reference the project by id; there is
// no back-pointer from Project to its tasks.
type Project struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (p *Project) HasMember(userID uuid.UUID) bool {
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
