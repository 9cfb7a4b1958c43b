package shell

import (
	"github.com/Remisdv/BDD/internal/model"

	"github.com/google/uuid"
)

// Session identifies the logged-in user for the duration of one menu loop.
// It is passed down the menu tree explicitly; there is no package-level
// current-user state.
type Session struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

func (s Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}
