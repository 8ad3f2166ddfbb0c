package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lostfound/internal/models"
	"lostfound/internal/repositories"
)

func TestMemoryUserRepository_CreateAndLookup(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(0)

	user := &models.User{
		Username:    "budi",
		NamaLengkap: "Budi Hartono",
		Email:       "budi@student.unsri.ac.id",
	}
	assert.NoError(t, repo.Create(user))
	assert.Equal(t, uint(1), user.ID)

	byName, err := repo.GetByUsername("budi")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "budi", byID.Username)
}

func TestMemoryUserRepository_UsernameIsUnique(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(0)

	assert.NoError(t, repo.Create(&models.User{Username: "budi", NamaLengkap: "Budi", Email: "budi@example.com"}))

	err := repo.Create(&models.User{Username: "budi", NamaLengkap: "Budi Kedua", Email: "budi2@example.com"})
	assert.ErrorIs(t, err, repositories.ErrConflict)

	// Usernames are compared case-sensitively: "Budi" is a different user.
	assert.NoError(t, repo.Create(&models.User{Username: "Budi", NamaLengkap: "Budi Besar", Email: "budi3@example.com"}))
}

func TestMemoryUserRepository_UnknownLookupsFail(t *testing.T) {
	repo := repositories.NewMemoryUserRepository(0)

	_, err := repo.GetByUsername("siapa")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
