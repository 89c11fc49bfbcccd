package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courtservice "padelku_backend/internals/features/courts/service"
	"padelku_backend/internals/features/services/dto"
	"padelku_backend/internals/features/services/model"
	"padelku_backend/internals/features/services/pricecalc"
	helper "padelku_backend/internals/helpers"
)

var validateService = validator.New()

type ServiceController struct {
	DB      *gorm.DB
	Catalog *courtservice.Catalog
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db, Catalog: courtservice.NewCatalog(db)}
}

// resolveCourtCost turns the quote's court reference into an hourly rate.
// Direct court_cost_per_hour wins. With a court_id the client names the slot
// explicitly; a court with zero slots quotes at rate 0 with the
// no_rate_configured flag set.
func (ctrl *ServiceController) resolveCourtCost(userID uuid.UUID, direct *float64, courtIDRaw, slotIDRaw *string) (rate float64, noRate bool, ferr *fiber.Error) {
	if direct != nil {
		return *direct, false, nil
	}
	if courtIDRaw == nil {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, "court_cost_per_hour or court_id is required")
	}
	courtID, err := uuid.Parse(*courtIDRaw)
	if err != nil {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, "Invalid court id")
	}

	if slotIDRaw != nil {
		slotID, err := uuid.Parse(*slotIDRaw)
		if err != nil {
			return 0, false, fiber.NewError(fiber.StatusBadRequest, "Invalid court_pricing_id")
		}
		slot, err := ctrl.Catalog.SelectSlot(userID, courtID, slotID)
		switch {
		case errors.Is(err, courtservice.ErrCourtNotFound):
			return 0, false, fiber.NewError(fiber.StatusNotFound, "Court not found")
		case errors.Is(err, courtservice.ErrSlotNotFound):
			return 0, false, fiber.NewError(fiber.StatusNotFound, "Pricing slot not found")
		case err != nil:
			return 0, false, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve court rate")
		}
		return courtservice.ResolveHourlyRate(slot), false, nil
	}

	slots, err := ctrl.Catalog.ListPricingSlots(userID, courtID)
	if errors.Is(err, courtservice.ErrCourtNotFound) {
		return 0, false, fiber.NewError(fiber.StatusNotFound, "Court not found")
	}
	if err != nil {
		return 0, false, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve court rate")
	}
	if len(slots) > 0 {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, "court_pricing_id is required when the court has pricing slots")
	}
	return 0, true, nil
}

// =======================
// 🧮 Quote a session price
// =======================
func (ctrl *ServiceController) Quote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.QuoteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rate, noRate, ferr := ctrl.resolveCourtCost(userID, body.CourtCostPerHour, body.CourtID, body.CourtPricingID)
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	in := pricecalc.Inputs{
		CourtCostPerHour:    rate,
		DurationHours:       body.DurationHours,
		MinParticipants:     body.MinParticipants,
		MaxParticipants:     body.MaxParticipants,
		TargetProfitPerHour: body.TargetProfitPerHour,
	}
	// Omitted price quotes at the recommendation; an explicit 0 is a real
	// price and is passed through as-is.
	if body.PricePerPerson != nil {
		in.PricePerPerson = *body.PricePerPerson
	} else {
		in.PricePerPerson = pricecalc.Recommend(in)
	}
	breakdown := pricecalc.Calculate(in)

	return helper.JsonOK(c, "ok", dto.QuoteResponse{
		CourtCostPerHour: rate,
		Breakdown:        breakdown,
		NoRateConfigured: noRate,
		ProfitWarning:    breakdown.TrainerProfitGross < 0,
	})
}

// =======================
// 📄 List my services
// =======================
func (ctrl *ServiceController) GetServices(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var services []model.ServiceModel
	if err := ctrl.DB.
		Where("service_user_id = ?", userID).
		Order("service_created_at ASC").
		Find(&services).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load services")
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.ToServiceDTO(svc))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// 📄 Get one service
// =======================
func (ctrl *ServiceController) GetService(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	var svc model.ServiceModel
	err = ctrl.DB.First(&svc, "service_id = ? AND service_user_id = ?", serviceID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load service")
	}
	return helper.JsonOK(c, "ok", dto.ToServiceDTO(svc))
}

// =======================
// ➕ Create service (returns a rate-snapshotted suggestion when court context is given)
// =======================
func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	svc := model.ServiceModel{
		ServiceUserID:              userID,
		ServiceName:                body.ServiceName,
		ServiceDescription:         body.ServiceDescription,
		ServiceType:                model.ServiceTypeSingle,
		ServiceDurationHours:       body.ServiceDurationHours,
		ServiceMinParticipants:     body.ServiceMinParticipants,
		ServiceMaxParticipants:     body.ServiceMaxParticipants,
		ServicePricePerPerson:      body.ServicePricePerPerson,
		ServiceTargetProfitPerHour: body.ServiceTargetProfitPerHour,
		ServiceSessionsCount:       body.ServiceSessionsCount,
		ServiceIsActive:            true,
		ServiceColor:               body.ServiceColor,
	}
	if body.ServiceType != "" {
		svc.ServiceType = body.ServiceType
	}
	if body.ServiceIsActive != nil {
		svc.ServiceIsActive = *body.ServiceIsActive
	}

	// Advisory suggestion; the service row never stores the court reference
	var suggestion *dto.QuoteResponse
	if body.CourtCostPerHour != nil || body.CourtID != nil {
		rate, noRate, ferr := ctrl.resolveCourtCost(userID, body.CourtCostPerHour, body.CourtID, body.CourtPricingID)
		if ferr != nil {
			return helper.JsonError(c, ferr.Code, ferr.Message)
		}
		breakdown := pricecalc.Calculate(pricecalc.Inputs{
			CourtCostPerHour:    rate,
			DurationHours:       body.ServiceDurationHours,
			MinParticipants:     body.ServiceMinParticipants,
			MaxParticipants:     body.ServiceMaxParticipants,
			TargetProfitPerHour: body.ServiceTargetProfitPerHour,
			PricePerPerson:      body.ServicePricePerPerson,
		})
		suggestion = &dto.QuoteResponse{
			CourtCostPerHour: rate,
			Breakdown:        breakdown,
			NoRateConfigured: noRate,
			ProfitWarning:    breakdown.TrainerProfitGross < 0,
		}
	}

	if err := ctrl.DB.Create(&svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create service")
	}
	return helper.JsonCreated(c, "Service created", fiber.Map{
		"service":    dto.ToServiceDTO(svc),
		"suggestion": suggestion,
	})
}

// =======================
// ✏️ Update service
// =======================
func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	var body dto.UpdateServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var svc model.ServiceModel
	err = ctrl.DB.First(&svc, "service_id = ? AND service_user_id = ?", serviceID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load service")
	}

	if body.ServiceMinParticipants != nil && body.ServiceMaxParticipants != nil &&
		*body.ServiceMaxParticipants < *body.ServiceMinParticipants {
		return helper.JsonError(c, fiber.StatusBadRequest, "service_max_participants must be >= service_min_participants")
	}

	updates := map[string]any{}
	if body.ServiceName != nil {
		updates["service_name"] = *body.ServiceName
	}
	if body.ServiceDescription != nil {
		updates["service_description"] = *body.ServiceDescription
	}
	if body.ServiceType != nil {
		updates["service_type"] = *body.ServiceType
	}
	if body.ServiceDurationHours != nil {
		updates["service_duration_hours"] = *body.ServiceDurationHours
	}
	if body.ServiceMinParticipants != nil {
		updates["service_min_participants"] = *body.ServiceMinParticipants
	}
	if body.ServiceMaxParticipants != nil {
		updates["service_max_participants"] = *body.ServiceMaxParticipants
	}
	if body.ServicePricePerPerson != nil {
		updates["service_price_per_person"] = *body.ServicePricePerPerson
	}
	if body.ServiceTargetProfitPerHour != nil {
		updates["service_target_profit_per_hour"] = *body.ServiceTargetProfitPerHour
	}
	if body.ServiceSessionsCount != nil {
		updates["service_sessions_count"] = *body.ServiceSessionsCount
	}
	if body.ServiceIsActive != nil {
		updates["service_is_active"] = *body.ServiceIsActive
	}
	if body.ServiceColor != nil {
		updates["service_color"] = *body.ServiceColor
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&svc).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update service")
		}
	}

	if err := ctrl.DB.First(&svc, "service_id = ?", serviceID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload service")
	}
	return helper.JsonUpdated(c, "Service updated", dto.ToServiceDTO(svc))
}

// =======================
// 🗑️ Delete service
// =======================
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
	}

	res := ctrl.DB.Where("service_id = ? AND service_user_id = ?", serviceID, userID).
		Delete(&model.ServiceModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete service")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Service not found")
	}
	return helper.JsonDeleted(c, "Service deleted", fiber.Map{"service_id": serviceID})
}
