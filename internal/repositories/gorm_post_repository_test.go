package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lostfound/internal/models"
	"lostfound/internal/repositories"
)

var gormDBCounter int64

func newGORMPostRepo(t *testing.T) (*repositories.GORMPostRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:gorm_post_repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&gormDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return repositories.NewGORMPostRepository(db), db
}

func seedGORMOwner(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	owner := models.User{
		Username:    "budi",
		NamaLengkap: "Budi Hartono",
		Email:       "budi@student.unsri.ac.id",
	}
	assert.NoError(t, db.Create(&owner).Error)
	return owner
}

func TestGORMPostRepository_UpdatePersistsChanges(t *testing.T) {
	repo, db := newGORMPostRepo(t)
	owner := seedGORMOwner(t, db)

	post := newTestPost("Dompet Hilang", models.KategoriLainnya, models.StatusHilang)
	post.UserID = owner.ID
	assert.NoError(t, repo.Create(post))

	post.Status = models.StatusTemuan
	assert.NoError(t, repo.Update(post))

	found, err := repo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusTemuan, found.Status)
	assert.Equal(t, "Dompet Hilang", found.Judul)
	assert.Equal(t, owner.ID, found.UserID)
}

func TestGORMPostRepository_UpdateMissingPostFails(t *testing.T) {
	repo, db := newGORMPostRepo(t)
	owner := seedGORMOwner(t, db)

	missing := newTestPost("Tidak Ada", models.KategoriLainnya, models.StatusHilang)
	missing.ID = 42
	missing.UserID = owner.ID

	assert.ErrorIs(t, repo.Update(missing), repositories.ErrNotFound)

	// The failed update must not have inserted the record.
	var count int64
	assert.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMPostRepository_UpdateAfterDeleteFails(t *testing.T) {
	repo, db := newGORMPostRepo(t)
	owner := seedGORMOwner(t, db)

	post := newTestPost("Dompet Hilang", models.KategoriLainnya, models.StatusHilang)
	post.UserID = owner.ID
	assert.NoError(t, repo.Create(post))
	assert.NoError(t, repo.Delete(post.ID))

	// A concurrent delete between read and write surfaces as ErrNotFound;
	// the deleted post must stay deleted.
	post.Status = models.StatusTemuan
	assert.ErrorIs(t, repo.Update(post), repositories.ErrNotFound)

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMPostRepository_SearchTreatsWildcardsAsLiterals(t *testing.T) {
	repo, db := newGORMPostRepo(t)
	owner := seedGORMOwner(t, db)

	diskon := newTestPost("Voucher Diskon 100% Ditemukan", models.KategoriLainnya, models.StatusTemuan)
	diskon.UserID = owner.ID
	dompet := newTestPost("Dompet Kulit Hilang", models.KategoriLainnya, models.StatusHilang)
	dompet.UserID = owner.ID
	assert.NoError(t, repo.Create(diskon))
	assert.NoError(t, repo.Create(dompet))

	// "%" and "_" are plain characters in a search term, not wildcards.
	posts, err := repo.List(repositories.PostFilter{Search: "100%"})
	assert.NoError(t, err)
	if assert.Len(t, posts, 1) {
		assert.Equal(t, "Voucher Diskon 100% Ditemukan", posts[0].Judul)
	}

	posts, err = repo.List(repositories.PostFilter{Search: "100_"})
	assert.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = repo.List(repositories.PostFilter{Search: "D_mpet"})
	assert.NoError(t, err)
	assert.Empty(t, posts)

	// Ordinary substrings still match case-insensitively.
	posts, err = repo.List(repositories.PostFilter{Search: "dompet"})
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
}
