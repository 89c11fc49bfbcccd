package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pkgmodel "padelku_backend/internals/features/packages/model"
	pkgservice "padelku_backend/internals/features/packages/service"
	"padelku_backend/internals/features/sessions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.GroupSessionModel{},
		&model.AttendanceModel{},
		&pkgmodel.PackageModel{},
		&pkgmodel.ClientPackageModel{},
	))
	return db
}

func newSession(t *testing.T, db *gorm.DB, userID uuid.UUID) model.GroupSessionModel {
	t.Helper()
	session := model.GroupSessionModel{
		SessionUserID:    userID,
		SessionGroupID:   uuid.New(),
		SessionDate:      datatypes.Date(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)),
		SessionStartTime: "18:00",
		SessionEndTime:   "19:30",
	}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func newClientPackage(t *testing.T, db *gorm.DB, userID uuid.UUID, sessions int) pkgmodel.ClientPackageModel {
	t.Helper()
	def := pkgmodel.PackageModel{
		PackageUserID:        userID,
		PackageName:          "bundle",
		PackageSessionsCount: sessions,
		PackagePrice:         500,
	}
	require.NoError(t, db.Create(&def).Error)

	usage := pkgservice.NewUsage(db)
	cp, err := usage.Purchase(userID, uuid.New(), def.PackageID, time.Now())
	require.NoError(t, err)
	return *cp
}

func remaining(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var cp pkgmodel.ClientPackageModel
	require.NoError(t, db.First(&cp, "client_package_id = ?", id).Error)
	return cp.ClientPackageSessionsRemaining
}

func TestMark_UpsertsOneRowPerClient(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	clientID := uuid.New()

	row, err := roster.Mark(userID, session.SessionID, clientID, model.AttendanceAbsent, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceAbsent, row.AttendanceStatus)

	row, err = roster.Mark(userID, session.SessionID, clientID, model.AttendanceExcused, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceExcused, row.AttendanceStatus)

	rows, err := roster.List(userID, session.SessionID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMark_PresentConsumesPackageOnce(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	clientID := uuid.New()
	cp := newClientPackage(t, db, userID, 5)

	_, err := roster.Mark(userID, session.SessionID, clientID, model.AttendancePresent, &cp.ClientPackageID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, remaining(t, db, cp.ClientPackageID))

	// Re-marking, even after flipping away and back, burns nothing more
	_, err = roster.Mark(userID, session.SessionID, clientID, model.AttendanceAbsent, nil, time.Now())
	require.NoError(t, err)
	_, err = roster.Mark(userID, session.SessionID, clientID, model.AttendancePresent, &cp.ClientPackageID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, remaining(t, db, cp.ClientPackageID))
}

func TestMark_AbsentDoesNotConsume(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	cp := newClientPackage(t, db, userID, 5)

	_, err := roster.Mark(userID, session.SessionID, uuid.New(), model.AttendanceAbsent, &cp.ClientPackageID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, remaining(t, db, cp.ClientPackageID))
}

func TestMark_EmptyPackageRejectsPresent(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	cp := newClientPackage(t, db, userID, 1)

	_, err := roster.Mark(userID, session.SessionID, uuid.New(), model.AttendancePresent, &cp.ClientPackageID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, remaining(t, db, cp.ClientPackageID))

	_, err = roster.Mark(userID, session.SessionID, uuid.New(), model.AttendancePresent, &cp.ClientPackageID, time.Now())
	assert.ErrorIs(t, err, pkgservice.ErrNoSessionsLeft)
	assert.Equal(t, 0, remaining(t, db, cp.ClientPackageID))
}

func TestMark_FailedConsumeLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	cp := newClientPackage(t, db, userID, 0)
	clientID := uuid.New()

	_, err := roster.Mark(userID, session.SessionID, clientID, model.AttendancePresent, &cp.ClientPackageID, time.Now())
	require.ErrorIs(t, err, pkgservice.ErrNoSessionsLeft)

	// The rejected mark must not leave a half-written attendance row
	var count int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).
		Where("attendance_session_id = ? AND attendance_client_id = ?", session.SessionID, clientID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestMark_FailedConsumeKeepsPriorStatus(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	userID := uuid.New()
	session := newSession(t, db, userID)
	cp := newClientPackage(t, db, userID, 0)
	clientID := uuid.New()

	_, err := roster.Mark(userID, session.SessionID, clientID, model.AttendanceAbsent, nil, time.Now())
	require.NoError(t, err)

	_, err = roster.Mark(userID, session.SessionID, clientID, model.AttendancePresent, &cp.ClientPackageID, time.Now())
	require.ErrorIs(t, err, pkgservice.ErrNoSessionsLeft)

	var row model.AttendanceModel
	require.NoError(t, db.First(&row,
		"attendance_session_id = ? AND attendance_client_id = ?", session.SessionID, clientID).Error)
	assert.Equal(t, model.AttendanceAbsent, row.AttendanceStatus)
	assert.Nil(t, row.AttendanceClientPackageID)
}

func TestMark_ForeignSession(t *testing.T) {
	db := newTestDB(t)
	roster := NewRoster(db)
	owner := uuid.New()
	session := newSession(t, db, owner)

	_, err := roster.Mark(uuid.New(), session.SessionID, uuid.New(), model.AttendancePresent, nil, time.Now())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
