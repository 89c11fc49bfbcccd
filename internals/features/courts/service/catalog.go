package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/features/courts/model"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	// ErrSlotNotFound covers both a missing slot id and a slot that exists
	// but hangs off another court. Callers must not be able to read rates
	// across court boundaries.
	ErrSlotNotFound  = errors.New("pricing slot not found")
	ErrNoSlotForTime = errors.New("no active pricing slot covers this time")
)

// Catalog owns all reads and writes of courts and their pricing slots.
// Every method is scoped by the owning user id.
type Catalog struct {
	DB *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{DB: db}
}

// =======================
// Courts
// =======================

func (s *Catalog) GetCourt(userID, courtID uuid.UUID) (*model.CourtModel, error) {
	var court model.CourtModel
	err := s.DB.
		Preload("Pricing", func(db *gorm.DB) *gorm.DB {
			return db.Order("court_pricing_display_order ASC, court_pricing_created_at ASC")
		}).
		First(&court, "court_id = ? AND court_user_id = ?", courtID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (s *Catalog) ListCourts(userID uuid.UUID) ([]model.CourtModel, error) {
	var courts []model.CourtModel
	err := s.DB.
		Preload("Pricing", func(db *gorm.DB) *gorm.DB {
			return db.Order("court_pricing_display_order ASC, court_pricing_created_at ASC")
		}).
		Where("court_user_id = ?", userID).
		Order("court_display_order ASC, court_created_at ASC").
		Find(&courts).Error
	if err != nil {
		return nil, err
	}
	return courts, nil
}

// CreateCourtWithSlots inserts the court and its initial pricing slots in a
// single transaction. If any slot insert fails nothing is persisted.
func (s *Catalog) CreateCourtWithSlots(court *model.CourtModel, slots []model.CourtPricingModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(court).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].CourtPricingCourtID = court.CourtID
			if err := tx.Create(&slots[i]).Error; err != nil {
				return fmt.Errorf("create pricing slot %d: %w", i, err)
			}
		}
		court.Pricing = slots
		return nil
	})
}

// DeleteCourt removes the court and all its pricing rows in one transaction.
// The FK carries ON DELETE CASCADE as well; the explicit delete keeps the
// behavior identical on engines where the constraint is not enforced.
func (s *Catalog) DeleteCourt(userID, courtID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var court model.CourtModel
		err := tx.First(&court, "court_id = ? AND court_user_id = ?", courtID, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourtNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Where("court_pricing_court_id = ?", courtID).
			Delete(&model.CourtPricingModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&court).Error
	})
}

// =======================
// Pricing slots
// =======================

// ListPricingSlots returns the court's slots ordered by display_order, then
// created_at. An existing court with zero slots yields an empty list, not an
// error.
func (s *Catalog) ListPricingSlots(userID, courtID uuid.UUID) ([]model.CourtPricingModel, error) {
	if err := s.ensureCourtOwned(userID, courtID); err != nil {
		return nil, err
	}
	var slots []model.CourtPricingModel
	err := s.DB.
		Where("court_pricing_court_id = ?", courtID).
		Order("court_pricing_display_order ASC, court_pricing_created_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// SelectSlot loads one slot by id, verifying it belongs to the given court.
func (s *Catalog) SelectSlot(userID, courtID, slotID uuid.UUID) (*model.CourtPricingModel, error) {
	if err := s.ensureCourtOwned(userID, courtID); err != nil {
		return nil, err
	}
	var slot model.CourtPricingModel
	err := s.DB.First(&slot,
		"court_pricing_id = ? AND court_pricing_court_id = ?", slotID, courtID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *Catalog) AddSlot(userID, courtID uuid.UUID, slot *model.CourtPricingModel) error {
	if err := s.ensureCourtOwned(userID, courtID); err != nil {
		return err
	}
	slot.CourtPricingCourtID = courtID
	return s.DB.Create(slot).Error
}

func (s *Catalog) RemoveSlot(userID, courtID, slotID uuid.UUID) error {
	if err := s.ensureCourtOwned(userID, courtID); err != nil {
		return err
	}
	res := s.DB.Where("court_pricing_id = ? AND court_pricing_court_id = ?", slotID, courtID).
		Delete(&model.CourtPricingModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// ResolveHourlyRate maps a slot to the rate fed into the price calculator.
func ResolveHourlyRate(slot *model.CourtPricingModel) float64 {
	if slot == nil {
		return 0
	}
	return slot.CourtPricingPricePerHour
}

// ResolveActiveSlot picks the slot whose window covers the given wall-clock
// time on the given day. When windows overlap the specific day type
// (weekday/weekend) beats "all", then lower display_order wins, then the
// earlier created_at. Returns ErrNoSlotForTime when nothing matches.
func (s *Catalog) ResolveActiveSlot(userID, courtID uuid.UUID, at time.Time) (*model.CourtPricingModel, error) {
	slots, err := s.ListPricingSlots(userID, courtID)
	if err != nil {
		return nil, err
	}

	dayType := model.DayTypeWeekday
	if wd := at.Weekday(); wd == time.Saturday || wd == time.Sunday {
		dayType = model.DayTypeWeekend
	}
	clock := at.Format("15:04")

	var best *model.CourtPricingModel
	for i := range slots {
		slot := &slots[i]
		if !slot.CourtPricingIsActive {
			continue
		}
		if slot.CourtPricingDayType != dayType && slot.CourtPricingDayType != model.DayTypeAll {
			continue
		}
		// Start inclusive, end exclusive. "HH:MM" compares correctly as a
		// string within one day.
		if clock < slot.CourtPricingStartTime || clock >= slot.CourtPricingEndTime {
			continue
		}
		if best == nil || slotBeats(slot, best) {
			best = slot
		}
	}
	if best == nil {
		return nil, ErrNoSlotForTime
	}
	return best, nil
}

func slotBeats(a, b *model.CourtPricingModel) bool {
	aSpecific := a.CourtPricingDayType != model.DayTypeAll
	bSpecific := b.CourtPricingDayType != model.DayTypeAll
	if aSpecific != bSpecific {
		return aSpecific
	}
	if a.CourtPricingDisplayOrder != b.CourtPricingDisplayOrder {
		return a.CourtPricingDisplayOrder < b.CourtPricingDisplayOrder
	}
	return a.CourtPricingCreatedAt.Before(b.CourtPricingCreatedAt)
}

func (s *Catalog) ensureCourtOwned(userID, courtID uuid.UUID) error {
	var count int64
	err := s.DB.Model(&model.CourtModel{}).
		Where("court_id = ? AND court_user_id = ?", courtID, userID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrCourtNotFound
	}
	return nil
}
