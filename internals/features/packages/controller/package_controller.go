package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/features/packages/dto"
	"padelku_backend/internals/features/packages/model"
	"padelku_backend/internals/features/packages/service"
	helper "padelku_backend/internals/helpers"
)

var validatePackage = validator.New()

type PackageController struct {
	DB    *gorm.DB
	Usage *service.Usage
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db, Usage: service.NewUsage(db)}
}

// =======================
// 📄 List my packages
// =======================
func (ctrl *PackageController) GetPackages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var defs []model.PackageModel
	if err := ctrl.DB.
		Where("package_user_id = ?", userID).
		Order("package_created_at ASC").
		Find(&defs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load packages")
	}

	out := make([]dto.PackageDTO, 0, len(defs))
	for _, def := range defs {
		out = append(out, dto.ToPackageDTO(def))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// ➕ Create package
// =======================
func (ctrl *PackageController) CreatePackage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreatePackageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePackage.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	def := model.PackageModel{
		PackageUserID:        userID,
		PackageName:          body.PackageName,
		PackageDescription:   body.PackageDescription,
		PackageSessionsCount: body.PackageSessionsCount,
		PackagePrice:         body.PackagePrice,
		PackageValidityDays:  body.PackageValidityDays,
	}
	if err := ctrl.DB.Create(&def).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create package")
	}
	return helper.JsonCreated(c, "Package created", dto.ToPackageDTO(def))
}

// =======================
// ✏️ Update package (does not touch sold packages)
// =======================
func (ctrl *PackageController) UpdatePackage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid package id")
	}

	var body dto.UpdatePackageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePackage.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var def model.PackageModel
	err = ctrl.DB.First(&def, "package_id = ? AND package_user_id = ?", packageID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Package not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load package")
	}

	updates := map[string]any{}
	if body.PackageName != nil {
		updates["package_name"] = *body.PackageName
	}
	if body.PackageDescription != nil {
		updates["package_description"] = *body.PackageDescription
	}
	if body.PackageSessionsCount != nil {
		updates["package_sessions_count"] = *body.PackageSessionsCount
	}
	if body.PackagePrice != nil {
		updates["package_price"] = *body.PackagePrice
	}
	if body.PackageValidityDays != nil {
		updates["package_validity_days"] = *body.PackageValidityDays
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&def).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update package")
		}
	}

	if err := ctrl.DB.First(&def, "package_id = ?", packageID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload package")
	}
	return helper.JsonUpdated(c, "Package updated", dto.ToPackageDTO(def))
}

// =======================
// 🗑️ Delete package
// =======================
func (ctrl *PackageController) DeletePackage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	packageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid package id")
	}

	res := ctrl.DB.Where("package_id = ? AND package_user_id = ?", packageID, userID).
		Delete(&model.PackageModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete package")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Package not found")
	}
	return helper.JsonDeleted(c, "Package deleted", fiber.Map{"package_id": packageID})
}

// =======================
// 🛒 Purchase a package for a client
// =======================
func (ctrl *PackageController) PurchasePackage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.PurchasePackageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePackage.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}
	packageID, err := uuid.Parse(body.PackageID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid package id")
	}

	purchaseDate := time.Now()
	if body.PurchaseDate != nil {
		purchaseDate, err = time.Parse("2006-01-02", *body.PurchaseDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "purchase_date must be YYYY-MM-DD")
		}
	}

	cp, err := ctrl.Usage.Purchase(userID, clientID, packageID, purchaseDate)
	if errors.Is(err, service.ErrPackageNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Package not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to purchase package")
	}
	return helper.JsonCreated(c, "Package purchased", dto.ToClientPackageDTO(*cp))
}

// =======================
// 📄 List a client's packages
// =======================
func (ctrl *PackageController) GetClientPackages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	rows, err := ctrl.Usage.ListByClient(userID, clientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load client packages")
	}

	out := make([]dto.ClientPackageDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToClientPackageDTO(row))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// ➖ Use one session from a client package
// =======================
func (ctrl *PackageController) UseSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clientPackageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client package id")
	}

	cp, err := ctrl.Usage.UseSession(userID, clientPackageID, time.Now())
	switch {
	case errors.Is(err, service.ErrClientPackageNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Client package not found")
	case errors.Is(err, service.ErrPackageInactive):
		return helper.JsonError(c, fiber.StatusConflict, "Client package is inactive")
	case errors.Is(err, service.ErrPackageExpired):
		return helper.JsonError(c, fiber.StatusConflict, "Client package is expired")
	case errors.Is(err, service.ErrNoSessionsLeft):
		return helper.JsonError(c, fiber.StatusConflict, "No sessions remaining")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to use session")
	}
	return helper.JsonUpdated(c, "Session used", dto.ToClientPackageDTO(*cp))
}
