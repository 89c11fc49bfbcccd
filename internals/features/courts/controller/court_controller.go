package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/features/courts/dto"
	"padelku_backend/internals/features/courts/model"
	"padelku_backend/internals/features/courts/service"
	helper "padelku_backend/internals/helpers"
	"padelku_backend/internals/helpers/storage"
)

var validateCourt = validator.New()

type CourtController struct {
	DB      *gorm.DB
	Catalog *service.Catalog
}

func NewCourtController(db *gorm.DB) *CourtController {
	return &CourtController{DB: db, Catalog: service.NewCatalog(db)}
}

// =======================
// 🏟️ List my courts
// =======================
func (ctrl *CourtController) GetCourts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courts, err := ctrl.Catalog.ListCourts(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courts")
	}

	out := make([]dto.CourtDTO, 0, len(courts))
	for _, court := range courts {
		out = append(out, dto.ToCourtDTO(court))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// 🏟️ Get one court
// =======================
func (ctrl *CourtController) GetCourt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
	}

	court, err := ctrl.Catalog.GetCourt(userID, courtID)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load court")
	}
	return helper.JsonOK(c, "ok", dto.ToCourtDTO(*court))
}

// =======================
// ➕ Create court (optionally with initial pricing slots)
// =======================
func (ctrl *CourtController) CreateCourt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateCourtRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	for _, slot := range body.PricingSlots {
		if err := slot.ValidateWindow(); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	court := model.CourtModel{
		CourtUserID:     userID,
		CourtName:       body.CourtName,
		CourtClubName:   body.CourtClubName,
		CourtType:       model.CourtTypeDouble,
		CourtHourlyRate: body.CourtHourlyRate,
		CourtIsActive:   true,
		CourtColor:      body.CourtColor,
		CourtAvatarURL:  body.CourtAvatarURL,
	}
	if body.CourtType != "" {
		court.CourtType = body.CourtType
	}
	if body.CourtIsActive != nil {
		court.CourtIsActive = *body.CourtIsActive
	}
	if body.CourtDisplayOrder != nil {
		court.CourtDisplayOrder = *body.CourtDisplayOrder
	}

	slots := make([]model.CourtPricingModel, 0, len(body.PricingSlots))
	for _, req := range body.PricingSlots {
		slots = append(slots, req.ToModel())
	}

	if err := ctrl.Catalog.CreateCourtWithSlots(&court, slots); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create court")
	}
	return helper.JsonCreated(c, "Court created", dto.ToCourtDTO(court))
}

// =======================
// ✏️ Update court
// =======================
func (ctrl *CourtController) UpdateCourt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
	}

	var body dto.UpdateCourtRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	court, err := ctrl.Catalog.GetCourt(userID, courtID)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load court")
	}

	updates := map[string]any{}
	if body.CourtName != nil {
		updates["court_name"] = *body.CourtName
	}
	if body.CourtClubName != nil {
		updates["court_club_name"] = *body.CourtClubName
	}
	if body.CourtType != nil {
		updates["court_type"] = *body.CourtType
	}
	if body.CourtHourlyRate != nil {
		updates["court_hourly_rate"] = *body.CourtHourlyRate
	}
	if body.CourtIsActive != nil {
		updates["court_is_active"] = *body.CourtIsActive
	}
	if body.CourtColor != nil {
		updates["court_color"] = *body.CourtColor
	}
	if body.CourtAvatarURL != nil {
		updates["court_avatar_url"] = *body.CourtAvatarURL
	}
	if body.CourtDisplayOrder != nil {
		updates["court_display_order"] = *body.CourtDisplayOrder
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.CourtModel{}).
			Where("court_id = ?", courtID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update court")
		}
	}

	court, err = ctrl.Catalog.GetCourt(userID, courtID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload court")
	}
	return helper.JsonUpdated(c, "Court updated", dto.ToCourtDTO(*court))
}

// =======================
// 🗑️ Delete court (pricing rows go with it)
// =======================
func (ctrl *CourtController) DeleteCourt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
	}

	err = ctrl.Catalog.DeleteCourt(userID, courtID)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete court")
	}
	return helper.JsonDeleted(c, "Court deleted", fiber.Map{"court_id": courtID})
}

// =======================
// 🖼️ Upload court avatar
// =======================
func (ctrl *CourtController) UploadCourtAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
	}

	court, err := ctrl.Catalog.GetCourt(userID, courtID)
	if errors.Is(err, service.ErrCourtNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load court")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "avatar file is required")
	}

	url, err := storage.UploadCourtAvatar(userID, fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to upload avatar")
	}

	// Best effort removal of the previous object
	if court.CourtAvatarURL != nil && *court.CourtAvatarURL != "" {
		_ = storage.DeleteCourtAvatarByURL(*court.CourtAvatarURL)
	}

	if err := ctrl.DB.Model(&model.CourtModel{}).
		Where("court_id = ?", courtID).
		Update("court_avatar_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar url")
	}
	return helper.JsonUpdated(c, "Avatar updated", fiber.Map{"court_avatar_url": url})
}
