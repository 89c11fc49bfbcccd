package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClientModel is one person the trainer coaches.
type ClientModel struct {
	ClientID     uuid.UUID `gorm:"column:client_id;type:uuid;primaryKey" json:"client_id"`
	ClientUserID uuid.UUID `gorm:"column:client_user_id;type:uuid;not null;index" json:"client_user_id"`

	ClientFirstName string  `gorm:"column:client_first_name;size:100;not null" json:"client_first_name"`
	ClientLastName  string  `gorm:"column:client_last_name;size:100;not null" json:"client_last_name"`
	ClientEmail     *string `gorm:"column:client_email;size:255" json:"client_email"`
	ClientPhone     *string `gorm:"column:client_phone;size:30" json:"client_phone"`
	ClientNotes     *string `gorm:"column:client_notes;type:text" json:"client_notes"`

	ClientTags    pq.StringArray `gorm:"column:client_tags;type:text[]" json:"client_tags"`
	ClientGroupID *uuid.UUID     `gorm:"column:client_group_id;type:uuid;index" json:"client_group_id"`

	ClientCreatedAt time.Time `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	ClientUpdatedAt time.Time `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
}

func (ClientModel) TableName() string {
	return "clients"
}

func (m *ClientModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClientID == uuid.Nil {
		m.ClientID = uuid.New()
	}
	return nil
}
