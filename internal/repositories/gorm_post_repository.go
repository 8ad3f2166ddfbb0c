package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lostfound/internal/models"
)

// GORMPostRepository is a GORM implementation of PostRepository. The owner
// is resolved with a join at read time instead of the in-memory store's
// copy-on-create snapshot; both satisfy the same read contract.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// likeEscaper neutralizes LIKE metacharacters so a search term is always a
// literal substring, matching the in-memory store's semantics.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// List retrieves the posts matching filter, most recent first.
func (r *GORMPostRepository) List(filter PostFilter) ([]models.Post, error) {
	filter = filter.Normalize()

	query := r.db.Preload("User").Order("created_at DESC")
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		query = query.Where(`LOWER(judul) LIKE ? ESCAPE '\'`, pattern)
	}
	if filter.Kategori != "" {
		query = query.Where("kategori = ?", filter.Kategori)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a single post by its ID, including the owner.
func (r *GORMPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").First(&post, "posts.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by ID %d: %w", id, err)
	}
	return &post, nil
}

// Create inserts a new post. The database assigns the sequential ID and
// GORM fills CreatedAt unless the caller preset it (seed data does).
func (r *GORMPostRepository) Create(post *models.Post) error {
	// Omit the association so the embedded owner snapshot is never
	// upserted into the users table.
	if err := r.db.Omit("User").Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update persists the full merged record. Save would fall back to an insert
// for a missing row, so the update runs with an explicit Where; zero affected
// rows means the post is gone.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", post.ID).Omit("User").Select("*").Updates(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", post.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a post by its ID.
func (r *GORMPostRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
