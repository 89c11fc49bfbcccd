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

	"padelku_backend/internals/features/courts/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CourtModel{}, &model.CourtPricingModel{}))
	return db
}

func newCourt(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) model.CourtModel {
	t.Helper()
	court := model.CourtModel{
		CourtUserID:   userID,
		CourtName:     name,
		CourtType:     model.CourtTypeDouble,
		CourtIsActive: true,
	}
	require.NoError(t, db.Create(&court).Error)
	return court
}

func slotFixture(courtID uuid.UUID, name, dayType, start, end string, price float64, order int) model.CourtPricingModel {
	return model.CourtPricingModel{
		CourtPricingCourtID:      courtID,
		CourtPricingName:         name,
		CourtPricingDayType:      dayType,
		CourtPricingStartTime:    start,
		CourtPricingEndTime:      end,
		CourtPricingPricePerHour: price,
		CourtPricingIsActive:     true,
		CourtPricingDisplayOrder: order,
	}
}

func TestListPricingSlots_EmptyCourt(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	slots, err := catalog.ListPricingSlots(userID, court.CourtID)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListPricingSlots_Ordering(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	evening := slotFixture(court.CourtID, "Evening", model.DayTypeAll, "17:00", "22:00", 140, 2)
	morning := slotFixture(court.CourtID, "Morning", model.DayTypeAll, "07:00", "12:00", 90, 1)
	require.NoError(t, db.Create(&evening).Error)
	require.NoError(t, db.Create(&morning).Error)

	slots, err := catalog.ListPricingSlots(userID, court.CourtID)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "Morning", slots[0].CourtPricingName)
	assert.Equal(t, "Evening", slots[1].CourtPricingName)
}

func TestListPricingSlots_UnknownCourt(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)

	_, err := catalog.ListPricingSlots(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestSelectSlot_CrossCourtIsNotFound(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	courtA := newCourt(t, db, userID, "A")
	courtB := newCourt(t, db, userID, "B")

	slot := slotFixture(courtA.CourtID, "Peak", model.DayTypeAll, "17:00", "21:00", 150, 0)
	require.NoError(t, db.Create(&slot).Error)

	got, err := catalog.SelectSlot(userID, courtA.CourtID, slot.CourtPricingID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, ResolveHourlyRate(got))

	// Same slot id through the other court must not resolve
	_, err = catalog.SelectSlot(userID, courtB.CourtID, slot.CourtPricingID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSelectSlot_OtherUserCannotRead(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	owner := uuid.New()
	court := newCourt(t, db, owner, "Private")
	slot := slotFixture(court.CourtID, "Peak", model.DayTypeAll, "17:00", "21:00", 150, 0)
	require.NoError(t, db.Create(&slot).Error)

	_, err := catalog.SelectSlot(uuid.New(), court.CourtID, slot.CourtPricingID)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestAddRemoveSlot_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	slot := slotFixture(court.CourtID, "Midday", model.DayTypeWeekday, "12:00", "15:00", 80, 0)
	require.NoError(t, catalog.AddSlot(userID, court.CourtID, &slot))
	require.NotEqual(t, uuid.Nil, slot.CourtPricingID)

	slots, err := catalog.ListPricingSlots(userID, court.CourtID)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	require.NoError(t, catalog.RemoveSlot(userID, court.CourtID, slot.CourtPricingID))

	slots, err = catalog.ListPricingSlots(userID, court.CourtID)
	require.NoError(t, err)
	assert.Empty(t, slots)

	err = catalog.RemoveSlot(userID, court.CourtID, slot.CourtPricingID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateCourtWithSlots_Transactional(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()

	court := model.CourtModel{
		CourtUserID:   userID,
		CourtName:     "Bundle",
		CourtType:     model.CourtTypeDouble,
		CourtIsActive: true,
	}
	slots := []model.CourtPricingModel{
		slotFixture(uuid.Nil, "Morning", model.DayTypeAll, "07:00", "12:00", 90, 0),
		slotFixture(uuid.Nil, "Evening", model.DayTypeAll, "17:00", "22:00", 140, 1),
	}
	require.NoError(t, catalog.CreateCourtWithSlots(&court, slots))

	listed, err := catalog.ListPricingSlots(userID, court.CourtID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, slot := range listed {
		assert.Equal(t, court.CourtID, slot.CourtPricingCourtID)
	}
}

func TestCreateCourtWithSlots_RollsBackOnBadSlot(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	existing := newCourt(t, db, userID, "Existing")
	taken := slotFixture(existing.CourtID, "Taken", model.DayTypeAll, "07:00", "12:00", 90, 0)
	require.NoError(t, db.Create(&taken).Error)

	court := model.CourtModel{
		CourtUserID:   userID,
		CourtName:     "Doomed",
		CourtType:     model.CourtTypeDouble,
		CourtIsActive: true,
	}
	bad := slotFixture(uuid.Nil, "Dup", model.DayTypeAll, "12:00", "15:00", 100, 1)
	bad.CourtPricingID = taken.CourtPricingID // forces a primary key collision
	slots := []model.CourtPricingModel{
		slotFixture(uuid.Nil, "Fine", model.DayTypeAll, "07:00", "12:00", 90, 0),
		bad,
	}

	err := catalog.CreateCourtWithSlots(&court, slots)
	require.Error(t, err)

	// Nothing from the bundle is persisted, not even the slot that inserted
	// cleanly before the failure
	var courts int64
	require.NoError(t, db.Model(&model.CourtModel{}).Count(&courts).Error)
	assert.Equal(t, int64(1), courts)
	var slotCount int64
	require.NoError(t, db.Model(&model.CourtPricingModel{}).Count(&slotCount).Error)
	assert.Equal(t, int64(1), slotCount)
}

func TestDeleteCourt_RemovesPricingRows(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Doomed")
	keep := newCourt(t, db, userID, "Keeper")

	doomedSlot := slotFixture(court.CourtID, "Peak", model.DayTypeAll, "17:00", "21:00", 150, 0)
	keptSlot := slotFixture(keep.CourtID, "Peak", model.DayTypeAll, "17:00", "21:00", 120, 0)
	require.NoError(t, db.Create(&doomedSlot).Error)
	require.NoError(t, db.Create(&keptSlot).Error)

	require.NoError(t, catalog.DeleteCourt(userID, court.CourtID))

	var orphans int64
	require.NoError(t, db.Model(&model.CourtPricingModel{}).
		Where("court_pricing_court_id = ?", court.CourtID).
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	// The sibling court keeps its rows
	slots, err := catalog.ListPricingSlots(userID, keep.CourtID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)

	err = catalog.DeleteCourt(userID, court.CourtID)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestResolveActiveSlot_WindowMatch(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	morning := slotFixture(court.CourtID, "Morning", model.DayTypeAll, "07:00", "12:00", 90, 0)
	evening := slotFixture(court.CourtID, "Evening", model.DayTypeAll, "17:00", "22:00", 140, 1)
	require.NoError(t, db.Create(&morning).Error)
	require.NoError(t, db.Create(&evening).Error)

	// Monday 2026-01-05
	at := time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC)
	slot, err := catalog.ResolveActiveSlot(userID, court.CourtID, at)
	require.NoError(t, err)
	assert.Equal(t, "Evening", slot.CourtPricingName)

	// End is exclusive
	at = time.Date(2026, 1, 5, 22, 0, 0, 0, time.UTC)
	_, err = catalog.ResolveActiveSlot(userID, court.CourtID, at)
	assert.ErrorIs(t, err, ErrNoSlotForTime)
}

func TestResolveActiveSlot_SpecificDayTypeWins(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	base := slotFixture(court.CourtID, "Base", model.DayTypeAll, "07:00", "22:00", 100, 0)
	weekend := slotFixture(court.CourtID, "Weekend", model.DayTypeWeekend, "07:00", "22:00", 160, 5)
	require.NoError(t, db.Create(&base).Error)
	require.NoError(t, db.Create(&weekend).Error)

	// Saturday 2026-01-10: weekend rule wins despite the higher display_order
	at := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	slot, err := catalog.ResolveActiveSlot(userID, court.CourtID, at)
	require.NoError(t, err)
	assert.Equal(t, "Weekend", slot.CourtPricingName)

	// Monday falls back to the all-days rule
	at = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	slot, err = catalog.ResolveActiveSlot(userID, court.CourtID, at)
	require.NoError(t, err)
	assert.Equal(t, "Base", slot.CourtPricingName)
}

func TestResolveActiveSlot_DisplayOrderTieBreak(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	second := slotFixture(court.CourtID, "Second", model.DayTypeAll, "07:00", "22:00", 110, 2)
	first := slotFixture(court.CourtID, "First", model.DayTypeAll, "07:00", "22:00", 100, 1)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)

	at := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	slot, err := catalog.ResolveActiveSlot(userID, court.CourtID, at)
	require.NoError(t, err)
	assert.Equal(t, "First", slot.CourtPricingName)
}

func TestResolveActiveSlot_SkipsInactive(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	userID := uuid.New()
	court := newCourt(t, db, userID, "Center")

	off := slotFixture(court.CourtID, "Disabled", model.DayTypeAll, "07:00", "22:00", 100, 0)
	require.NoError(t, db.Create(&off).Error)
	// default:true makes a zero-value insert come back active, flip it after
	require.NoError(t, db.Model(&off).Update("court_pricing_is_active", false).Error)

	at := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	_, err := catalog.ResolveActiveSlot(userID, court.CourtID, at)
	assert.ErrorIs(t, err, ErrNoSlotForTime)
}

func TestResolveHourlyRate_NilSlot(t *testing.T) {
	assert.Zero(t, ResolveHourlyRate(nil))
}
