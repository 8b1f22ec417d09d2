package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/models"
	"github.com/lvicens/blanca-med/backend/internal/search"
	"github.com/lvicens/blanca-med/backend/internal/types"
)

// ErrAllergenExists is returned when a user already has an entry with the
// same name
var ErrAllergenExists = errors.New("an allergen with that name already exists")

// PersonalAllergenService manages a signed-in user's own allergen entries.
// Unlike the curated dataset these are mutable, so searches build a fresh
// snapshot per call instead of holding one.
type PersonalAllergenService struct {
	db *gorm.DB
}

func NewPersonalAllergenService(db *gorm.DB) *PersonalAllergenService {
	return &PersonalAllergenService{db: db}
}

func (s *PersonalAllergenService) List(ctx context.Context, userID uuid.UUID) ([]models.PersonalAllergen, error) {
	var entries []models.PersonalAllergen
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// nameTaken reports whether the user already has an entry with the same
// folded name. The engine rejects duplicate names when the snapshot is
// built, so they must never be saved; the comparison here uses the same
// trim-and-lowercase folding.
func (s *PersonalAllergenService) nameTaken(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	folded := strings.ToLower(strings.TrimSpace(name))
	var count int64
	err := s.db.WithContext(ctx).Model(&models.PersonalAllergen{}).
		Where("user_id = ? AND LOWER(TRIM(name)) = ? AND id <> ?", userID, folded, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (s *PersonalAllergenService) Create(ctx context.Context, userID uuid.UUID, req *types.PersonalAllergenRequest) (*models.PersonalAllergen, error) {
	taken, err := s.nameTaken(ctx, userID, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAllergenExists
	}

	entry := models.PersonalAllergen{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		IsAllergic:  req.IsAllergic,
		Intensity:   req.Intensity,
		Category:    req.Category,
		KUAPerLiter: req.KUAPerLiter,
		Notes:       req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *PersonalAllergenService) Update(ctx context.Context, userID, id uuid.UUID, req *types.PersonalAllergenRequest) (*models.PersonalAllergen, error) {
	var entry models.PersonalAllergen
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(ctx, userID, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAllergenExists
	}

	entry.Name = strings.TrimSpace(req.Name)
	entry.IsAllergic = req.IsAllergic
	entry.Intensity = req.Intensity
	entry.Category = req.Category
	entry.KUAPerLiter = req.KUAPerLiter
	entry.Notes = req.Notes

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *PersonalAllergenService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.PersonalAllergen{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search runs the lookup engine over the user's own entries. The snapshot
// is built from a point-in-time read, so a concurrent edit never leaves a
// half-updated collection visible to the match.
func (s *PersonalAllergenService) Search(ctx context.Context, userID uuid.UUID, raw string, mode search.Mode) (search.Descriptor, search.Result, error) {
	entries, err := s.List(ctx, userID)
	if err != nil {
		return search.Descriptor{}, search.Result{}, err
	}

	records := make([]search.Record, len(entries))
	for i, e := range entries {
		records[i] = e.SearchRecord()
	}

	store, err := search.NewStore(records)
	if err != nil {
		return search.Descriptor{}, search.Result{}, err
	}

	d := search.Normalize(raw, mode)
	return d, search.Match(d, store), nil
}
