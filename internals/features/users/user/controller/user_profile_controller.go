package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"padelku_backend/internals/features/users/user/dto"
	"padelku_backend/internals/features/users/user/model"
	helper "padelku_backend/internals/helpers"
)

var validateProfile = validator.New()

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// =======================
// 📄 Get my profile
// =======================
func (ctrl *UserProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile model.UserProfileModel
	err = ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Accounts created before the profile table existed get a row lazily
		profile = model.UserProfileModel{ProfileUserID: userID}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	return helper.JsonOK(c, "ok", dto.ToUserProfileDTO(profile))
}

// =======================
// ✏️ Update my profile
// =======================
func (ctrl *UserProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateUserProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
	}

	updates := map[string]any{}
	if body.ProfileFullName != nil {
		updates["profile_full_name"] = *body.ProfileFullName
	}
	if body.ProfilePhone != nil {
		updates["profile_phone"] = *body.ProfilePhone
	}
	if body.ProfileBusinessName != nil {
		updates["profile_business_name"] = *body.ProfileBusinessName
	}
	if body.ProfileAvatarURL != nil {
		updates["profile_avatar_url"] = *body.ProfileAvatarURL
	}
	if body.ProfileDefaultVAT != nil {
		updates["profile_default_vat"] = *body.ProfileDefaultVAT
	}
	if body.ProfileDefaultPITRate != nil {
		updates["profile_default_pit_rate"] = *body.ProfileDefaultPITRate
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&profile).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
		}
	}

	if err := ctrl.DB.First(&profile, "profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserProfileDTO(profile))
}
