package dto

import (
	"time"

	"padelku_backend/internals/features/clients/model"
)

type ClientDTO struct {
	ClientID        string    `json:"client_id"`
	ClientUserID    string    `json:"client_user_id"`
	ClientFirstName string    `json:"client_first_name"`
	ClientLastName  string    `json:"client_last_name"`
	ClientEmail     *string   `json:"client_email"`
	ClientPhone     *string   `json:"client_phone"`
	ClientNotes     *string   `json:"client_notes"`
	ClientTags      []string  `json:"client_tags"`
	ClientGroupID   *string   `json:"client_group_id"`
	ClientCreatedAt time.Time `json:"client_created_at"`
	ClientUpdatedAt time.Time `json:"client_updated_at"`
}

type CreateClientRequest struct {
	ClientFirstName string   `json:"client_first_name" validate:"required,min=1,max=100"`
	ClientLastName  string   `json:"client_last_name" validate:"required,min=1,max=100"`
	ClientEmail     *string  `json:"client_email" validate:"omitempty,email"`
	ClientPhone     *string  `json:"client_phone" validate:"omitempty,max=30"`
	ClientNotes     *string  `json:"client_notes"`
	ClientTags      []string `json:"client_tags" validate:"omitempty,dive,min=1,max=50"`
	ClientGroupID   *string  `json:"client_group_id" validate:"omitempty,uuid4"`
}

type UpdateClientRequest struct {
	ClientFirstName *string   `json:"client_first_name" validate:"omitempty,min=1,max=100"`
	ClientLastName  *string   `json:"client_last_name" validate:"omitempty,min=1,max=100"`
	ClientEmail     *string   `json:"client_email" validate:"omitempty,email"`
	ClientPhone     *string   `json:"client_phone" validate:"omitempty,max=30"`
	ClientNotes     *string   `json:"client_notes"`
	ClientTags      *[]string `json:"client_tags" validate:"omitempty,dive,min=1,max=50"`
	ClientGroupID   *string   `json:"client_group_id" validate:"omitempty,uuid4"`
}

func ToClientDTO(m model.ClientModel) ClientDTO {
	var groupID *string
	if m.ClientGroupID != nil {
		s := m.ClientGroupID.String()
		groupID = &s
	}
	tags := []string(m.ClientTags)
	if tags == nil {
		tags = []string{}
	}
	return ClientDTO{
		ClientID:        m.ClientID.String(),
		ClientUserID:    m.ClientUserID.String(),
		ClientFirstName: m.ClientFirstName,
		ClientLastName:  m.ClientLastName,
		ClientEmail:     m.ClientEmail,
		ClientPhone:     m.ClientPhone,
		ClientNotes:     m.ClientNotes,
		ClientTags:      tags,
		ClientGroupID:   groupID,
		ClientCreatedAt: m.ClientCreatedAt,
		ClientUpdatedAt: m.ClientUpdatedAt,
	}
}
