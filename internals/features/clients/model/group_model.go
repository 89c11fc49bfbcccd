package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupModel is a skill/training group clients are assigned to.
type GroupModel struct {
	GroupID     uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey" json:"group_id"`
	GroupUserID uuid.UUID `gorm:"column:group_user_id;type:uuid;not null;index" json:"group_user_id"`

	GroupName            string  `gorm:"column:group_name;size:100;not null" json:"group_name"`
	GroupDescription     *string `gorm:"column:group_description;type:text" json:"group_description"`
	GroupColor           *string `gorm:"column:group_color;size:20" json:"group_color"`
	GroupMaxParticipants int     `gorm:"column:group_max_participants;not null;default:4" json:"group_max_participants"`
	GroupIsActive        bool    `gorm:"column:group_is_active;not null;default:true" json:"group_is_active"`

	GroupCreatedAt time.Time `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupID == uuid.Nil {
		m.GroupID = uuid.New()
	}
	return nil
}
