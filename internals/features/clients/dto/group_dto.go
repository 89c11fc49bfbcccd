package dto

import (
	"time"

	"padelku_backend/internals/features/clients/model"
)

type GroupDTO struct {
	GroupID              string    `json:"group_id"`
	GroupUserID          string    `json:"group_user_id"`
	GroupName            string    `json:"group_name"`
	GroupDescription     *string   `json:"group_description"`
	GroupColor           *string   `json:"group_color"`
	GroupMaxParticipants int       `json:"group_max_participants"`
	GroupIsActive        bool      `json:"group_is_active"`
	GroupCreatedAt       time.Time `json:"group_created_at"`
	GroupUpdatedAt       time.Time `json:"group_updated_at"`
}

type CreateGroupRequest struct {
	GroupName            string  `json:"group_name" validate:"required,min=1,max=100"`
	GroupDescription     *string `json:"group_description"`
	GroupColor           *string `json:"group_color" validate:"omitempty,max=20"`
	GroupMaxParticipants *int    `json:"group_max_participants" validate:"omitempty,min=1"`
	GroupIsActive        *bool   `json:"group_is_active"`
}

type UpdateGroupRequest struct {
	GroupName            *string `json:"group_name" validate:"omitempty,min=1,max=100"`
	GroupDescription     *string `json:"group_description"`
	GroupColor           *string `json:"group_color" validate:"omitempty,max=20"`
	GroupMaxParticipants *int    `json:"group_max_participants" validate:"omitempty,min=1"`
	GroupIsActive        *bool   `json:"group_is_active"`
}

func ToGroupDTO(m model.GroupModel) GroupDTO {
	return GroupDTO{
		GroupID:              m.GroupID.String(),
		GroupUserID:          m.GroupUserID.String(),
		GroupName:            m.GroupName,
		GroupDescription:     m.GroupDescription,
		GroupColor:           m.GroupColor,
		GroupMaxParticipants: m.GroupMaxParticipants,
		GroupIsActive:        m.GroupIsActive,
		GroupCreatedAt:       m.GroupCreatedAt,
		GroupUpdatedAt:       m.GroupUpdatedAt,
	}
}
