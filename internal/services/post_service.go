package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lostfound/internal/models"
	"lostfound/internal/repositories"
)

// EventPublisher publishes post lifecycle events to the message broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// PostService handles business logic for lost and found posts: listing with
// filters, creation with an embedded owner snapshot, and owner-guarded
// update and delete.
type PostService struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher // may be nil when no broker is configured
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, publisher EventPublisher) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// ListPosts returns the posts matching filter, most recent first. An empty
// result is a normal outcome, not an error.
func (s *PostService) ListPosts(filter repositories.PostFilter) ([]models.Post, error) {
	return s.postRepo.List(filter)
}

// GetPostByID retrieves a single post. Absence is reported as
// repositories.ErrNotFound; callers commonly treat it as a normal branch
// (redirect to the listing) rather than a failure.
func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a new post owned by ownerID. The owner must exist; a
// snapshot of their record is embedded in the post at creation time and not
// refreshed afterwards. On success a post.created event is published.
func (s *PostService) CreatePost(post *models.Post, ownerID uint) (*models.Post, error) {
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("post owner: %w", err)
	}

	post.ID = 0
	post.CreatedAt = time.Time{}
	post.UserID = owner.ID
	post.User = *owner

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.publishEvent(models.EventPostCreated, post)
	return post, nil
}

// UpdatePost applies a partial update to the post with the given ID. Only
// the owner may update a post. Fields absent from changes keep their current
// value; the identifier, owner and creation timestamp never change.
func (s *PostService) UpdatePost(id uint, changes *models.PostUpdate, callerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, fmt.Errorf("update post %d: %w", id, ErrForbidden)
	}

	changes.Apply(post)
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return post, nil
}

// DeletePost removes the post with the given ID. Only the owner may delete a
// post. Deleting an already deleted post fails with ErrNotFound. On success
// a post.deleted event is published.
func (s *PostService) DeletePost(id uint, callerID uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return fmt.Errorf("delete post %d: %w", id, ErrForbidden)
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	s.publishEvent(models.EventPostDeleted, post)
	return nil
}

// publishEvent sends a post lifecycle event. Publishing is best-effort: a
// broker failure is logged but never fails the store operation it follows.
func (s *PostService) publishEvent(eventType string, post *models.Post) {
	if s.publisher == nil {
		return
	}

	event := models.PostEvent{
		Type:       eventType,
		PostID:     post.ID,
		UserID:     post.UserID,
		Judul:      post.Judul,
		Kategori:   post.Kategori,
		Status:     post.Status,
		OccurredAt: time.Now(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for post %d: %v", eventType, post.ID, err)
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for post %d: %v", eventType, post.ID, err)
	}
}
