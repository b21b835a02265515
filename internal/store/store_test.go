package store

import (
	"testing"

	"github.com/dideey/alx-backend-user-data/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *UserStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return NewUserStore(db)
}

func TestAddUserAndFindByEmail(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddUser("a@b.com", "hashed")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := s.FindUserBy("email", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hashed", found.HashedPassword)
	assert.Nil(t, found.SessionID)
}

func TestFindUserBy_NoResult(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindUserBy("email", "nobody@b.com")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestFindUserBy_UnknownColumn(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindUserBy("password", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResult)
}

func TestUpdateUser_SessionColumn(t *testing.T) {
	s := newTestStore(t)

	created, err := s.AddUser("a@b.com", "hashed")
	require.NoError(t, err)

	require.NoError(t, s.UpdateUser(created.ID, map[string]interface{}{"session_id": "token-1"}))

	found, err := s.FindUserBy("session_id", "token-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// clearing the column makes the token unresolvable
	require.NoError(t, s.UpdateUser(created.ID, map[string]interface{}{"session_id": nil}))
	_, err = s.FindUserBy("session_id", "token-1")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestAddUser_DuplicateEmailRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddUser("a@b.com", "hashed")
	require.NoError(t, err)

	// the unique index backstops the service-level duplicate check
	_, err = s.AddUser("a@b.com", "other")
	assert.Error(t, err)
}
