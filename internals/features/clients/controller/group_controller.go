package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"padelku_backend/internals/features/clients/dto"
	"padelku_backend/internals/features/clients/model"
	helper "padelku_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// =======================
// 📄 List my groups
// =======================
func (ctrl *GroupController) GetGroups(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var groups []model.GroupModel
	if err := ctrl.DB.
		Where("group_user_id = ?", userID).
		Order("group_name ASC").
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load groups")
	}

	out := make([]dto.GroupDTO, 0, len(groups))
	for _, group := range groups {
		out = append(out, dto.ToGroupDTO(group))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// ➕ Create group
// =======================
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	group := model.GroupModel{
		GroupUserID:          userID,
		GroupName:            body.GroupName,
		GroupDescription:     body.GroupDescription,
		GroupColor:           body.GroupColor,
		GroupMaxParticipants: 4,
		GroupIsActive:        true,
	}
	if body.GroupMaxParticipants != nil {
		group.GroupMaxParticipants = *body.GroupMaxParticipants
	}
	if body.GroupIsActive != nil {
		group.GroupIsActive = *body.GroupIsActive
	}

	if err := ctrl.DB.Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.JsonCreated(c, "Group created", dto.ToGroupDTO(group))
}

// =======================
// ✏️ Update group
// =======================
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var body dto.UpdateGroupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var group model.GroupModel
	err = ctrl.DB.First(&group, "group_id = ? AND group_user_id = ?", groupID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load group")
	}

	updates := map[string]any{}
	if body.GroupName != nil {
		updates["group_name"] = *body.GroupName
	}
	if body.GroupDescription != nil {
		updates["group_description"] = *body.GroupDescription
	}
	if body.GroupColor != nil {
		updates["group_color"] = *body.GroupColor
	}
	if body.GroupMaxParticipants != nil {
		updates["group_max_participants"] = *body.GroupMaxParticipants
	}
	if body.GroupIsActive != nil {
		updates["group_is_active"] = *body.GroupIsActive
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&group).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update group")
		}
	}

	if err := ctrl.DB.First(&group, "group_id = ?", groupID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload group")
	}
	return helper.JsonUpdated(c, "Group updated", dto.ToGroupDTO(group))
}

// =======================
// 🗑️ Delete group (members are detached, not deleted)
// =======================
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("group_id = ? AND group_user_id = ?", groupID, userID).
			Delete(&model.GroupModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.ClientModel{}).
			Where("client_group_id = ? AND client_user_id = ?", groupID, userID).
			Update("client_group_id", nil).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete group")
	}
	return helper.JsonDeleted(c, "Group deleted", fiber.Map{"group_id": groupID})
}
