package repositories

import "lostfound/internal/models"

// PostFilter narrows the result of List. Conditions compose with logical AND.
// An empty field and the web client's "Semua" sentinel both mean "no filter".
type PostFilter struct {
	Search   string // case-insensitive substring match on the title
	Kategori string // exact category match
	Status   string // exact status match
}

// Normalize maps the "Semua" sentinel onto absent filters so query code only
// ever deals with genuinely optional conditions.
func (f PostFilter) Normalize() PostFilter {
	if f.Kategori == models.FilterSemua {
		f.Kategori = ""
	}
	if f.Status == models.FilterSemua {
		f.Status = ""
	}
	return f
}

// PostRepository defines the interface for post data access. List returns
// posts ordered by creation time, most recent first.
type PostRepository interface {
	List(filter PostFilter) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uint) error
}
