package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/features/courts/dto"
	"padelku_backend/internals/features/courts/service"
	helper "padelku_backend/internals/helpers"
)

type CourtPricingController struct {
	DB      *gorm.DB
	Catalog *service.Catalog
}

func NewCourtPricingController(db *gorm.DB) *CourtPricingController {
	return &CourtPricingController{DB: db, Catalog: service.NewCatalog(db)}
}

func (ctrl *CourtPricingController) pathIDs(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	courtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid court id")
	}
	return userID, courtID, nil
}

// =======================
// 📄 List pricing slots
// =======================
func (ctrl *CourtPricingController) ListSlots(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}

	slots, err := ctrl.Catalog.ListPricingSlots(userID, courtID)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pricing slots")
	}

	out := make([]dto.CourtPricingDTO, 0, len(slots))
	for _, slot := range slots {
		out = append(out, dto.ToCourtPricingDTO(slot))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// ➕ Add pricing slot
// =======================
func (ctrl *CourtPricingController) AddSlot(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}

	var body dto.CourtPricingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := body.ValidateWindow(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slot := body.ToModel()
	err = ctrl.Catalog.AddSlot(userID, courtID, &slot)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create pricing slot")
	}
	return helper.JsonCreated(c, "Pricing slot created", dto.ToCourtPricingDTO(slot))
}

// =======================
// 📄 Get one slot
// =======================
func (ctrl *CourtPricingController) GetSlot(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}
	slotID, err := uuid.Parse(c.Params("slot_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	slot, err := ctrl.Catalog.SelectSlot(userID, courtID, slotID)
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	case errors.Is(err, service.ErrSlotNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pricing slot not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pricing slot")
	}
	return helper.JsonOK(c, "ok", dto.ToCourtPricingDTO(*slot))
}

// =======================
// ✏️ Update pricing slot
// =======================
func (ctrl *CourtPricingController) UpdateSlot(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}
	slotID, err := uuid.Parse(c.Params("slot_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	var body dto.CourtPricingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := body.ValidateWindow(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slot, err := ctrl.Catalog.SelectSlot(userID, courtID, slotID)
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	case errors.Is(err, service.ErrSlotNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pricing slot not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pricing slot")
	}

	updates := map[string]any{
		"court_pricing_name":           body.CourtPricingName,
		"court_pricing_day_type":       body.CourtPricingDayType,
		"court_pricing_start_time":     body.CourtPricingStartTime,
		"court_pricing_end_time":       body.CourtPricingEndTime,
		"court_pricing_price_per_hour": body.CourtPricingPricePerHour,
	}
	if body.CourtPricingIsActive != nil {
		updates["court_pricing_is_active"] = *body.CourtPricingIsActive
	}
	if body.CourtPricingDisplayOrder != nil {
		updates["court_pricing_display_order"] = *body.CourtPricingDisplayOrder
	}
	if err := ctrl.DB.Model(slot).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update pricing slot")
	}

	slot, err = ctrl.Catalog.SelectSlot(userID, courtID, slotID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload pricing slot")
	}
	return helper.JsonUpdated(c, "Pricing slot updated", dto.ToCourtPricingDTO(*slot))
}

// =======================
// 🗑️ Delete pricing slot
// =======================
func (ctrl *CourtPricingController) DeleteSlot(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}
	slotID, err := uuid.Parse(c.Params("slot_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid slot id")
	}

	err = ctrl.Catalog.RemoveSlot(userID, courtID, slotID)
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	case errors.Is(err, service.ErrSlotNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pricing slot not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete pricing slot")
	}
	return helper.JsonDeleted(c, "Pricing slot deleted", fiber.Map{"court_pricing_id": slotID})
}

// =======================
// 🕐 Resolve active slot for a moment in time
// =======================
// GET /courts/:id/pricing/resolve?at=2026-01-05T18:30:00Z (defaults to now)
func (ctrl *CourtPricingController) ResolveSlot(c *fiber.Ctx) error {
	userID, courtID, err := ctrl.pathIDs(c)
	if err != nil {
		return err
	}

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "at must be RFC3339")
		}
		at = parsed
	}

	slot, err := ctrl.Catalog.ResolveActiveSlot(userID, courtID, at)
	switch {
	case errors.Is(err, service.ErrCourtNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	case errors.Is(err, service.ErrNoSlotForTime):
		return helper.JsonError(c, fiber.StatusNotFound, "No active pricing slot covers this time")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve pricing slot")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"slot":        dto.ToCourtPricingDTO(*slot),
		"hourly_rate": service.ResolveHourlyRate(slot),
	})
}
