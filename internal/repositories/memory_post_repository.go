package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"lostfound/internal/models"
)

// MemoryPostRepository is an in-memory implementation of PostRepository.
// Posts live in a slice with the newest entry at the front; identifiers come
// from a sequence that never reuses a value. An optional delay mirrors the
// perceived latency of a remote API, which is useful when the service backs
// a UI under development.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
	seq   *Sequence
	delay time.Duration
}

// NewMemoryPostRepository creates an empty MemoryPostRepository. Every
// operation sleeps for delay before touching the collection; pass zero to
// disable the simulated latency.
func NewMemoryPostRepository(delay time.Duration) *MemoryPostRepository {
	return &MemoryPostRepository{
		seq:   NewSequence(1),
		delay: delay,
	}
}

// simulateLatency sleeps outside the critical section, so in-flight calls
// never observe a half-applied mutation.
func (r *MemoryPostRepository) simulateLatency() {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
}

// List returns the posts matching filter, ordered most recent first. The
// ordering is computed fresh on every call. An empty result is not an error.
func (r *MemoryPostRepository) List(filter PostFilter) ([]models.Post, error) {
	r.simulateLatency()
	filter = filter.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	result := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if search != "" && !strings.Contains(strings.ToLower(p.Judul), search) {
			continue
		}
		if filter.Kategori != "" && p.Kategori != filter.Kategori {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetByID returns the post with the given ID.
func (r *MemoryPostRepository) GetByID(id uint) (*models.Post, error) {
	r.simulateLatency()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
}

// Create adds a new post at the front of the collection. A zero ID is
// replaced with the next sequential identifier; a zero CreatedAt is set to
// the current instant. Seed data may preassign both.
func (r *MemoryPostRepository) Create(post *models.Post) error {
	r.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == 0 {
		post.ID = r.seq.Next()
	} else {
		r.seq.Advance(post.ID)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts = append([]models.Post{*post}, r.posts...)
	return nil
}

// Update replaces an existing post in place.
func (r *MemoryPostRepository) Update(post *models.Post) error {
	r.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			r.posts[i] = *post
			return nil
		}
	}
	return fmt.Errorf("post with ID %d: %w", post.ID, ErrNotFound)
}

// Delete removes a post. Deleting the same ID twice is an error; identifiers
// are not recycled afterwards.
func (r *MemoryPostRepository) Delete(id uint) error {
	r.simulateLatency()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
}
