package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/internal/models"
)

// ProtocolService serves the emergency protocol sheets
type ProtocolService struct {
	db *gorm.DB
}

func NewProtocolService(db *gorm.DB) *ProtocolService {
	return &ProtocolService{db: db}
}

// List returns every protocol sheet, most severe first
func (s *ProtocolService) List(ctx context.Context) ([]models.EmergencyProtocol, error) {
	var protocols []models.EmergencyProtocol
	order := "CASE severity WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, title"
	if err := s.db.WithContext(ctx).Order(order).Find(&protocols).Error; err != nil {
		return nil, err
	}
	return protocols, nil
}

func (s *ProtocolService) Get(ctx context.Context, id uuid.UUID) (*models.EmergencyProtocol, error) {
	var protocol models.EmergencyProtocol
	if err := s.db.WithContext(ctx).First(&protocol, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &protocol, nil
}
