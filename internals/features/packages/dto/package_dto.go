package dto

import (
	"time"

	"gorm.io/datatypes"

	"padelku_backend/internals/features/packages/model"
)

// ============================
// Package definitions
// ============================

type PackageDTO struct {
	PackageID            string    `json:"package_id"`
	PackageUserID        string    `json:"package_user_id"`
	PackageName          string    `json:"package_name"`
	PackageDescription   *string   `json:"package_description"`
	PackageSessionsCount int       `json:"package_sessions_count"`
	PackagePrice         float64   `json:"package_price"`
	PackageValidityDays  *int      `json:"package_validity_days"`
	PackageCreatedAt     time.Time `json:"package_created_at"`
	PackageUpdatedAt     time.Time `json:"package_updated_at"`
}

type CreatePackageRequest struct {
	PackageName          string  `json:"package_name" validate:"required,min=1,max=100"`
	PackageDescription   *string `json:"package_description"`
	PackageSessionsCount int     `json:"package_sessions_count" validate:"required,min=1"`
	PackagePrice         float64 `json:"package_price" validate:"gte=0"`
	PackageValidityDays  *int    `json:"package_validity_days" validate:"omitempty,min=1"`
}

type UpdatePackageRequest struct {
	PackageName          *string  `json:"package_name" validate:"omitempty,min=1,max=100"`
	PackageDescription   *string  `json:"package_description"`
	PackageSessionsCount *int     `json:"package_sessions_count" validate:"omitempty,min=1"`
	PackagePrice         *float64 `json:"package_price" validate:"omitempty,gte=0"`
	PackageValidityDays  *int     `json:"package_validity_days" validate:"omitempty,min=1"`
}

func ToPackageDTO(m model.PackageModel) PackageDTO {
	return PackageDTO{
		PackageID:            m.PackageID.String(),
		PackageUserID:        m.PackageUserID.String(),
		PackageName:          m.PackageName,
		PackageDescription:   m.PackageDescription,
		PackageSessionsCount: m.PackageSessionsCount,
		PackagePrice:         m.PackagePrice,
		PackageValidityDays:  m.PackageValidityDays,
		PackageCreatedAt:     m.PackageCreatedAt,
		PackageUpdatedAt:     m.PackageUpdatedAt,
	}
}

// ============================
// Client purchases
// ============================

type ClientPackageDTO struct {
	ClientPackageID                string    `json:"client_package_id"`
	ClientPackageClientID          string    `json:"client_package_client_id"`
	ClientPackagePackageID         string    `json:"client_package_package_id"`
	ClientPackagePurchaseDate      string    `json:"client_package_purchase_date"`
	ClientPackageExpiryDate        *string   `json:"client_package_expiry_date"`
	ClientPackageSessionsRemaining int       `json:"client_package_sessions_remaining"`
	ClientPackageIsActive          bool      `json:"client_package_is_active"`
	ClientPackageCreatedAt         time.Time `json:"client_package_created_at"`
}

type PurchasePackageRequest struct {
	ClientID     string  `json:"client_id" validate:"required,uuid4"`
	PackageID    string  `json:"package_id" validate:"required,uuid4"`
	PurchaseDate *string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}

func ToClientPackageDTO(m model.ClientPackageModel) ClientPackageDTO {
	var expiry *string
	if m.ClientPackageExpiryDate != nil {
		s := formatDate(*m.ClientPackageExpiryDate)
		expiry = &s
	}
	return ClientPackageDTO{
		ClientPackageID:                m.ClientPackageID.String(),
		ClientPackageClientID:          m.ClientPackageClientID.String(),
		ClientPackagePackageID:         m.ClientPackagePackageID.String(),
		ClientPackagePurchaseDate:      formatDate(m.ClientPackagePurchaseDate),
		ClientPackageExpiryDate:        expiry,
		ClientPackageSessionsRemaining: m.ClientPackageSessionsRemaining,
		ClientPackageIsActive:          m.ClientPackageIsActive,
		ClientPackageCreatedAt:         m.ClientPackageCreatedAt,
	}
}
