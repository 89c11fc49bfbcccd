package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"padelku_backend/internals/features/clients/dto"
	"padelku_backend/internals/features/clients/model"
	helper "padelku_backend/internals/helpers"
)

var validateClient = validator.New()

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (ctrl *ClientController) ensureGroupOwned(userID uuid.UUID, groupIDRaw string) (*uuid.UUID, error) {
	groupID, err := uuid.Parse(groupIDRaw)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := ctrl.DB.Model(&model.GroupModel{}).
		Where("group_id = ? AND group_user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &groupID, nil
}

// =======================
// 📄 List my clients (paged, ?search= on name, ?tag= filter)
// =======================
func (ctrl *ClientController) GetClients(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.ClientModel{}).Where("client_user_id = ?", userID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(client_first_name) LIKE ? OR LOWER(client_last_name) LIKE ?", like, like)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(client_tags)", tag)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count clients")
	}

	var clients []model.ClientModel
	if err := q.Order("client_last_name ASC, client_first_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&clients).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load clients")
	}

	out := make([]dto.ClientDTO, 0, len(clients))
	for _, client := range clients {
		out = append(out, dto.ToClientDTO(client))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPagination(total, paging))
}

// =======================
// 📄 Get one client
// =======================
func (ctrl *ClientController) GetClient(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	var client model.ClientModel
	err = ctrl.DB.First(&client, "client_id = ? AND client_user_id = ?", clientID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load client")
	}
	return helper.JsonOK(c, "ok", dto.ToClientDTO(client))
}

// =======================
// ➕ Create client
// =======================
func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateClientRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	client := model.ClientModel{
		ClientUserID:    userID,
		ClientFirstName: body.ClientFirstName,
		ClientLastName:  body.ClientLastName,
		ClientEmail:     body.ClientEmail,
		ClientPhone:     body.ClientPhone,
		ClientNotes:     body.ClientNotes,
		ClientTags:      pq.StringArray(body.ClientTags),
	}
	if body.ClientGroupID != nil {
		groupID, err := ctrl.ensureGroupOwned(userID, *body.ClientGroupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		client.ClientGroupID = groupID
	}

	if err := ctrl.DB.Create(&client).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create client")
	}
	return helper.JsonCreated(c, "Client created", dto.ToClientDTO(client))
}

// =======================
// ✏️ Update client
// =======================
func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	var body dto.UpdateClientRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var client model.ClientModel
	err = ctrl.DB.First(&client, "client_id = ? AND client_user_id = ?", clientID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load client")
	}

	updates := map[string]any{}
	if body.ClientFirstName != nil {
		updates["client_first_name"] = *body.ClientFirstName
	}
	if body.ClientLastName != nil {
		updates["client_last_name"] = *body.ClientLastName
	}
	if body.ClientEmail != nil {
		updates["client_email"] = *body.ClientEmail
	}
	if body.ClientPhone != nil {
		updates["client_phone"] = *body.ClientPhone
	}
	if body.ClientNotes != nil {
		updates["client_notes"] = *body.ClientNotes
	}
	if body.ClientTags != nil {
		updates["client_tags"] = pq.StringArray(*body.ClientTags)
	}
	if body.ClientGroupID != nil {
		if *body.ClientGroupID == "" {
			updates["client_group_id"] = nil
		} else {
			groupID, err := ctrl.ensureGroupOwned(userID, *body.ClientGroupID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
			}
			updates["client_group_id"] = groupID
		}
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&client).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update client")
		}
	}

	if err := ctrl.DB.First(&client, "client_id = ?", clientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload client")
	}
	return helper.JsonUpdated(c, "Client updated", dto.ToClientDTO(client))
}

// =======================
// 🗑️ Delete client
// =======================
func (ctrl *ClientController) DeleteClient(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	res := ctrl.DB.Where("client_id = ? AND client_user_id = ?", clientID, userID).
		Delete(&model.ClientModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete client")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}
	return helper.JsonDeleted(c, "Client deleted", fiber.Map{"client_id": clientID})
}
