package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Preference is the stored onboarding profile for one device/browser
// profile. One row per device; absence of a row means "no preferences yet".
type Preference struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DeviceID       string         `gorm:"uniqueIndex;not null"`
	Interests      pq.StringArray `gorm:"type:text[]"`
	BudgetRange    string
	Transportation string
	GroupSize      string
	FavoriteAreas  pq.StringArray `gorm:"type:text[]"`
	CreatedAt      int64          `gorm:"autoCreateTime"`
	UpdatedAt      int64          `gorm:"autoUpdateTime"`
}

func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().Unix()
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (p *Preference) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now().Unix()
	return nil
}
