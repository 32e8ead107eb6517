package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/kbukum/travelpay/internal/database"
	"github.com/kbukum/travelpay/internal/model"
)

// Users is the user repository.
type Users struct {
	db *database.DB
}

// NewUsers creates the user repository.
func NewUsers(db *database.DB) *Users {
	return &Users{db: db}
}

// ByID fetches a user by primary key.
func (s *Users) ByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := s.db.Gorm.WithContext(ctx).First(&u, id).Error
	return s.one(&u, err)
}

// ByUsername fetches a user by username, case-insensitively.
func (s *Users) ByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.Gorm.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&u).Error
	return s.one(&u, err)
}

// ByEmail fetches a user by email, case-insensitively.
func (s *Users) ByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.Gorm.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&u).Error
	return s.one(&u, err)
}

// ByPhoneNumber fetches a user by phone number.
func (s *Users) ByPhoneNumber(ctx context.Context, phone string) (*model.User, error) {
	var u model.User
	err := s.db.Gorm.WithContext(ctx).
		Where("phone_number = ?", phone).
		First(&u).Error
	return s.one(&u, err)
}

// ByCitizenID fetches a user by citizen id.
func (s *Users) ByCitizenID(ctx context.Context, citizenID string) (*model.User, error) {
	var u model.User
	err := s.db.Gorm.WithContext(ctx).
		Where("citizen_id = ?", citizenID).
		First(&u).Error
	return s.one(&u, err)
}

// Create inserts a new user. A storage-level uniqueness violation is
// reported as ErrDuplicateKey.
func (s *Users) Create(ctx context.Context, u *model.User) error {
	err := s.db.Gorm.WithContext(ctx).Create(u).Error
	if database.IsDuplicate(err) {
		return fmt.Errorf("create user: %w", ErrDuplicateKey)
	}
	return err
}

func (s *Users) one(u *model.User, err error) (*model.User, error) {
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
