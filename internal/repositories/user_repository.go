package repositories

import "lostfound/internal/models"

// UserRepository defines the interface for user data access. Users are only
// ever created through registration; there is no update or delete path.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
