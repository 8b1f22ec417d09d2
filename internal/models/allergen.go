package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/search"
)

// Allergen is one row of the curated public allergen dataset. The dataset
// is read-only at runtime; it is loaded into a search.Store at startup and
// only changed by reseeding.
type Allergen struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	IsAllergic  bool           `gorm:"not null" json:"is_allergic"`
	Intensity   string         `gorm:"size:10;not null" json:"intensity"`
	Category    string         `gorm:"size:50;not null;index" json:"category"`
	KUAPerLiter *float64       `gorm:"column:kua_per_liter" json:"kua_per_liter,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Allergen) TableName() string {
	return "allergens"
}

func (a *Allergen) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// SearchRecord converts the row into the engine's record type. Intensity
// is validated again by search.NewStore when the snapshot is built.
func (a Allergen) SearchRecord() search.Record {
	return search.Record{
		Name:        a.Name,
		Allergic:    a.IsAllergic,
		Intensity:   search.Intensity(a.Intensity),
		Category:    a.Category,
		KUAPerLiter: a.KUAPerLiter,
	}
}

// PersonalAllergen is a signed-in user's own mutable allergen entry,
// maintained separately from the curated dataset.
type PersonalAllergen struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	IsAllergic  bool           `gorm:"not null" json:"is_allergic"`
	Intensity   string         `gorm:"size:10;not null" json:"intensity"`
	Category    string         `gorm:"size:50;not null" json:"category"`
	KUAPerLiter *float64       `gorm:"column:kua_per_liter" json:"kua_per_liter,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PersonalAllergen) TableName() string {
	return "personal_allergens"
}

func (a *PersonalAllergen) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a PersonalAllergen) SearchRecord() search.Record {
	return search.Record{
		Name:        a.Name,
		Allergic:    a.IsAllergic,
		Intensity:   search.Intensity(a.Intensity),
		Category:    a.Category,
		KUAPerLiter: a.KUAPerLiter,
	}
}
