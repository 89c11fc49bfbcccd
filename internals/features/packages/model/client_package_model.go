package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClientPackageModel is one purchase of a package by one client.
// SessionsRemaining only moves down, one session at a time, never below zero.
type ClientPackageModel struct {
	ClientPackageID        uuid.UUID `gorm:"column:client_package_id;type:uuid;primaryKey" json:"client_package_id"`
	ClientPackageUserID    uuid.UUID `gorm:"column:client_package_user_id;type:uuid;not null;index" json:"client_package_user_id"`
	ClientPackageClientID  uuid.UUID `gorm:"column:client_package_client_id;type:uuid;not null;index" json:"client_package_client_id"`
	ClientPackagePackageID uuid.UUID `gorm:"column:client_package_package_id;type:uuid;not null;index" json:"client_package_package_id"`

	ClientPackagePurchaseDate      datatypes.Date  `gorm:"column:client_package_purchase_date;not null" json:"client_package_purchase_date"`
	ClientPackageExpiryDate        *datatypes.Date `gorm:"column:client_package_expiry_date" json:"client_package_expiry_date"`
	ClientPackageSessionsRemaining int             `gorm:"column:client_package_sessions_remaining;not null" json:"client_package_sessions_remaining"`
	ClientPackageIsActive          bool            `gorm:"column:client_package_is_active;not null;default:true" json:"client_package_is_active"`

	ClientPackageCreatedAt time.Time `gorm:"column:client_package_created_at;autoCreateTime" json:"client_package_created_at"`
	ClientPackageUpdatedAt time.Time `gorm:"column:client_package_updated_at;autoUpdateTime" json:"client_package_updated_at"`
}

func (ClientPackageModel) TableName() string {
	return "client_packages"
}

func (m *ClientPackageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClientPackageID == uuid.Nil {
		m.ClientPackageID = uuid.New()
	}
	return nil
}
