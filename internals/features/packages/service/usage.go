package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"padelku_backend/internals/features/packages/model"
)

var (
	ErrPackageNotFound       = errors.New("package not found")
	ErrClientPackageNotFound = errors.New("client package not found")
	ErrPackageInactive       = errors.New("client package is inactive")
	ErrPackageExpired        = errors.New("client package is expired")
	ErrNoSessionsLeft        = errors.New("no sessions remaining")
)

// Usage owns purchases and session consumption of client packages.
type Usage struct {
	DB *gorm.DB
}

func NewUsage(db *gorm.DB) *Usage {
	return &Usage{DB: db}
}

// Purchase creates a client package from a package definition. Sessions and
// expiry are snapshotted at purchase time; later edits to the definition do
// not touch sold packages.
func (s *Usage) Purchase(userID, clientID, packageID uuid.UUID, purchaseDate time.Time) (*model.ClientPackageModel, error) {
	var def model.PackageModel
	err := s.DB.First(&def, "package_id = ? AND package_user_id = ?", packageID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	cp := model.ClientPackageModel{
		ClientPackageUserID:            userID,
		ClientPackageClientID:          clientID,
		ClientPackagePackageID:         packageID,
		ClientPackagePurchaseDate:      datatypes.Date(purchaseDate),
		ClientPackageSessionsRemaining: def.PackageSessionsCount,
		ClientPackageIsActive:          true,
	}
	if def.PackageValidityDays != nil {
		expiry := datatypes.Date(purchaseDate.AddDate(0, 0, *def.PackageValidityDays))
		cp.ClientPackageExpiryDate = &expiry
	}
	if err := s.DB.Create(&cp).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}

// UseSession burns one session off the client package. The decrement is a
// single conditional UPDATE so concurrent marks cannot take the counter
// below zero.
func (s *Usage) UseSession(userID, clientPackageID uuid.UUID, now time.Time) (*model.ClientPackageModel, error) {
	var cp model.ClientPackageModel
	err := s.DB.First(&cp,
		"client_package_id = ? AND client_package_user_id = ?", clientPackageID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	if !cp.ClientPackageIsActive {
		return nil, ErrPackageInactive
	}
	if cp.ClientPackageExpiryDate != nil {
		expiry := time.Time(*cp.ClientPackageExpiryDate)
		today := now.Truncate(24 * time.Hour)
		if expiry.Before(today) {
			return nil, ErrPackageExpired
		}
	}
	if cp.ClientPackageSessionsRemaining <= 0 {
		return nil, ErrNoSessionsLeft
	}

	res := s.DB.Model(&model.ClientPackageModel{}).
		Where("client_package_id = ? AND client_package_sessions_remaining > 0", clientPackageID).
		Update("client_package_sessions_remaining", gorm.Expr("client_package_sessions_remaining - 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNoSessionsLeft
	}

	if err := s.DB.First(&cp, "client_package_id = ?", clientPackageID).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}

// ListByClient returns a client's purchases, newest first.
func (s *Usage) ListByClient(userID, clientID uuid.UUID) ([]model.ClientPackageModel, error) {
	var rows []model.ClientPackageModel
	err := s.DB.
		Where("client_package_user_id = ? AND client_package_client_id = ?", userID, clientID).
		Order("client_package_created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
