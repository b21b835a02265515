package store

import (
	"errors"
	"fmt"

	"github.com/dideey/alx-backend-user-data/internal/models"

	"gorm.io/gorm"
)

// ErrNoResult signals that a lookup matched zero rows. Callers treat it as an
// expected outcome, distinguishable from connectivity or integrity faults.
var ErrNoResult = errors.New("no matching user")

// queryable columns for FindUserBy
var userColumns = map[string]bool{
	"id":         true,
	"email":      true,
	"session_id": true,
}

// UserStore persists and queries user records by exact-match columns.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindUserBy returns the first user whose column exactly equals value,
// in the store's natural order. A miss returns ErrNoResult.
func (s *UserStore) FindUserBy(field string, value interface{}) (*models.User, error) {
	if !userColumns[field] {
		return nil, fmt.Errorf("unknown user column %q", field)
	}

	var user models.User
	err := s.db.Where(map[string]interface{}{field: value}).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoResult
		}
		return nil, fmt.Errorf("find user by %s: %w", field, err)
	}
	return &user, nil
}

// AddUser inserts a new user row with the given email and password hash.
func (s *UserStore) AddUser(email, hashedPassword string) (*models.User, error) {
	user := models.User{
		Email:          email,
		HashedPassword: hashedPassword,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	return &user, nil
}

// UpdateUser applies the given column updates to one user row.
func (s *UserStore) UpdateUser(id uint, fields map[string]interface{}) error {
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}
