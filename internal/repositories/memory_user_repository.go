package repositories

import (
	"fmt"
	"sync"
	"time"

	"lostfound/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uint]models.User
	seq   *Sequence
	delay time.Duration
}

// NewMemoryUserRepository creates an empty MemoryUserRepository with the
// given simulated latency (zero to disable).
func NewMemoryUserRepository(delay time.Duration) *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[uint]models.User),
		seq:   NewSequence(1),
		delay: delay,
	}
}

func (r *MemoryUserRepository) simulateLatency() {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
}

// Create adds a new user. Usernames are unique, compared case-sensitively.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %q: %w", user.Username, ErrConflict)
		}
	}
	if user.ID == 0 {
		user.ID = r.seq.Next()
	} else {
		r.seq.Advance(user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

// GetByUsername retrieves a user by their exact username.
func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.simulateLatency()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with username %q: %w", username, ErrNotFound)
}

// GetByID retrieves a user by their ID.
func (r *MemoryUserRepository) GetByID(id uint) (*models.User, error) {
	r.simulateLatency()

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &user, nil
}
