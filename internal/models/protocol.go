package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray stores a string slice as JSONB (postgres) or a JSON
// text column (sqlite)
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// EmergencyProtocol is a step-by-step instruction sheet shown during an
// allergic reaction, ordered by severity.
type EmergencyProtocol struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string           `gorm:"size:255;not null" json:"title"`
	Severity  string           `gorm:"size:10;not null" json:"severity"`
	Summary   string           `gorm:"type:text" json:"summary"`
	Steps     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (EmergencyProtocol) TableName() string {
	return "emergency_protocols"
}

func (p *EmergencyProtocol) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
