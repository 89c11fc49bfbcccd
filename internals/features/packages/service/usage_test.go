package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"padelku_backend/internals/features/packages/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PackageModel{}, &model.ClientPackageModel{}))
	return db
}

func newPackage(t *testing.T, db *gorm.DB, userID uuid.UUID, sessions int, validityDays *int) model.PackageModel {
	t.Helper()
	def := model.PackageModel{
		PackageUserID:        userID,
		PackageName:          "10 sessions",
		PackageSessionsCount: sessions,
		PackagePrice:         900,
		PackageValidityDays:  validityDays,
	}
	require.NoError(t, db.Create(&def).Error)
	return def
}

func TestPurchase_SnapshotsSessionsAndExpiry(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	userID := uuid.New()
	clientID := uuid.New()
	validity := 30
	def := newPackage(t, db, userID, 10, &validity)

	bought := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cp, err := usage.Purchase(userID, clientID, def.PackageID, bought)
	require.NoError(t, err)

	assert.Equal(t, 10, cp.ClientPackageSessionsRemaining)
	require.NotNil(t, cp.ClientPackageExpiryDate)
	assert.Equal(t, bought.AddDate(0, 0, 30), time.Time(*cp.ClientPackageExpiryDate))
}

func TestPurchase_UnknownPackage(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)

	_, err := usage.Purchase(uuid.New(), uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestUseSession_DecrementsToZeroAndStops(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	userID := uuid.New()
	def := newPackage(t, db, userID, 2, nil)

	cp, err := usage.Purchase(userID, uuid.New(), def.PackageID, time.Now())
	require.NoError(t, err)

	now := time.Now()
	cp, err = usage.UseSession(userID, cp.ClientPackageID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, cp.ClientPackageSessionsRemaining)

	cp, err = usage.UseSession(userID, cp.ClientPackageID, now)
	require.NoError(t, err)
	assert.Equal(t, 0, cp.ClientPackageSessionsRemaining)

	// Floor: the counter never goes negative
	_, err = usage.UseSession(userID, cp.ClientPackageID, now)
	assert.ErrorIs(t, err, ErrNoSessionsLeft)

	var check model.ClientPackageModel
	require.NoError(t, db.First(&check, "client_package_id = ?", cp.ClientPackageID).Error)
	assert.Equal(t, 0, check.ClientPackageSessionsRemaining)
}

func TestUseSession_ExpiredPackage(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	userID := uuid.New()
	validity := 7
	def := newPackage(t, db, userID, 5, &validity)

	bought := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cp, err := usage.Purchase(userID, uuid.New(), def.PackageID, bought)
	require.NoError(t, err)

	after := bought.AddDate(0, 0, 8)
	_, err = usage.UseSession(userID, cp.ClientPackageID, after)
	assert.ErrorIs(t, err, ErrPackageExpired)
}

func TestUseSession_InactivePackage(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	userID := uuid.New()
	def := newPackage(t, db, userID, 5, nil)

	cp, err := usage.Purchase(userID, uuid.New(), def.PackageID, time.Now())
	require.NoError(t, err)
	require.NoError(t, db.Model(cp).Update("client_package_is_active", false).Error)

	_, err = usage.UseSession(userID, cp.ClientPackageID, time.Now())
	assert.ErrorIs(t, err, ErrPackageInactive)
}

func TestUseSession_ForeignUser(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	owner := uuid.New()
	def := newPackage(t, db, owner, 5, nil)

	cp, err := usage.Purchase(owner, uuid.New(), def.PackageID, time.Now())
	require.NoError(t, err)

	_, err = usage.UseSession(uuid.New(), cp.ClientPackageID, time.Now())
	assert.ErrorIs(t, err, ErrClientPackageNotFound)
}

func TestListByClient_ScopedToClient(t *testing.T) {
	db := newTestDB(t)
	usage := NewUsage(db)
	userID := uuid.New()
	clientA := uuid.New()
	clientB := uuid.New()
	def := newPackage(t, db, userID, 5, nil)

	_, err := usage.Purchase(userID, clientA, def.PackageID, time.Now())
	require.NoError(t, err)
	_, err = usage.Purchase(userID, clientB, def.PackageID, time.Now())
	require.NoError(t, err)

	rows, err := usage.ListByClient(userID, clientA)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
