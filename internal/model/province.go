package model

// CityTier classifies provinces for subsidy purposes.
type CityTier string

const (
	CityTierMain      CityTier = "main"
	CityTierSecondary CityTier = "secondary"
)

// Province is reference data for travel destinations. The Thai name is the
// natural key.
type Province struct {
	ID               int64    `gorm:"primaryKey" json:"id"`
	NameTH           string   `gorm:"uniqueIndex;size:100;not null" json:"name_th"`
	NameEN           *string  `gorm:"size:100" json:"name_en,omitempty"`
	Region           string   `gorm:"size:50" json:"region"`
	CityTier         CityTier `gorm:"size:20;not null" json:"city_tier"`
	TaxReductionRate float64  `gorm:"type:decimal(5,2)" json:"tax_reduction_rate"`
	TaxDescription   *string  `gorm:"size:255" json:"tax_description,omitempty"`
}
