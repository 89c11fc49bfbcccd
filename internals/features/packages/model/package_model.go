package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PackageModel is a sellable bundle of sessions.
type PackageModel struct {
	PackageID     uuid.UUID `gorm:"column:package_id;type:uuid;primaryKey" json:"package_id"`
	PackageUserID uuid.UUID `gorm:"column:package_user_id;type:uuid;not null;index" json:"package_user_id"`

	PackageName          string  `gorm:"column:package_name;size:100;not null" json:"package_name"`
	PackageDescription   *string `gorm:"column:package_description;type:text" json:"package_description"`
	PackageSessionsCount int     `gorm:"column:package_sessions_count;not null" json:"package_sessions_count"`
	PackagePrice         float64 `gorm:"column:package_price;type:numeric(10,2);not null" json:"package_price"`
	PackageValidityDays  *int    `gorm:"column:package_validity_days" json:"package_validity_days"`

	PackageCreatedAt time.Time `gorm:"column:package_created_at;autoCreateTime" json:"package_created_at"`
	PackageUpdatedAt time.Time `gorm:"column:package_updated_at;autoUpdateTime" json:"package_updated_at"`
}

func (PackageModel) TableName() string {
	return "packages"
}

func (m *PackageModel) BeforeCreate(tx *gorm.DB) error {
	if m.PackageID == uuid.Nil {
		m.PackageID = uuid.New()
	}
	return nil
}
