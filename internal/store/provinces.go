package store

import (
	"context"
	"fmt"

	"github.com/kbukum/travelpay/internal/database"
	"github.com/kbukum/travelpay/internal/model"
)

// Provinces is the province repository.
type Provinces struct {
	db *database.DB
}

// NewProvinces creates the province repository.
func NewProvinces(db *database.DB) *Provinces {
	return &Provinces{db: db}
}

// ByID fetches a province by primary key.
func (s *Provinces) ByID(ctx context.Context, id int64) (*model.Province, error) {
	var p model.Province
	err := s.db.Gorm.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ByNameTH fetches a province by its Thai name.
func (s *Provinces) ByNameTH(ctx context.Context, nameTH string) (*model.Province, error) {
	var p model.Province
	err := s.db.Gorm.WithContext(ctx).Where("name_th = ?", nameTH).First(&p).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// All lists provinces, optionally filtered by city tier.
func (s *Provinces) All(ctx context.Context, tier model.CityTier) ([]model.Province, error) {
	q := s.db.Gorm.WithContext(ctx).Order("id")
	if tier != "" {
		q = q.Where("city_tier = ?", tier)
	}
	var provinces []model.Province
	if err := q.Find(&provinces).Error; err != nil {
		return nil, err
	}
	return provinces, nil
}

// Create inserts a new province. A duplicate Thai name is reported as
// ErrDuplicateKey.
func (s *Provinces) Create(ctx context.Context, p *model.Province) error {
	err := s.db.Gorm.WithContext(ctx).Create(p).Error
	if database.IsDuplicate(err) {
		return fmt.Errorf("create province: %w", ErrDuplicateKey)
	}
	return err
}
