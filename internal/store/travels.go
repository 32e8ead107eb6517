package store

import (
	"context"

	"github.com/kbukum/travelpay/internal/database"
	"github.com/kbukum/travelpay/internal/model"
)

// Travels is the travel-plan repository. All reads are scoped to an owner
// and embed the destination province.
type Travels struct {
	db *database.DB
}

// NewTravels creates the travel repository.
func NewTravels(db *database.DB) *Travels {
	return &Travels{db: db}
}

// ByID fetches a travel plan owned by the given user.
func (s *Travels) ByID(ctx context.Context, id, userID int64) (*model.Travel, error) {
	var t model.Travel
	err := s.db.Gorm.WithContext(ctx).
		Preload("Province").
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ByUser lists all travel plans owned by the given user.
func (s *Travels) ByUser(ctx context.Context, userID int64) ([]model.Travel, error) {
	var travels []model.Travel
	err := s.db.Gorm.WithContext(ctx).
		Preload("Province").
		Where("user_id = ?", userID).
		Order("id").
		Find(&travels).Error
	if err != nil {
		return nil, err
	}
	return travels, nil
}

// Create inserts a new travel plan.
func (s *Travels) Create(ctx context.Context, t *model.Travel) error {
	return s.db.Gorm.WithContext(ctx).Create(t).Error
}

// Save persists changes to an existing travel plan.
func (s *Travels) Save(ctx context.Context, t *model.Travel) error {
	return s.db.Gorm.WithContext(ctx).Save(t).Error
}

// Delete removes a travel plan.
func (s *Travels) Delete(ctx context.Context, t *model.Travel) error {
	return s.db.Gorm.WithContext(ctx).Delete(t).Error
}
