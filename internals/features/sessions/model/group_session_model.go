package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GroupSessionModel is one scheduled training for a group. Court and service
// references are informational; there is no booking engine behind them.
type GroupSessionModel struct {
	SessionID      uuid.UUID  `gorm:"column:session_id;type:uuid;primaryKey" json:"session_id"`
	SessionUserID  uuid.UUID  `gorm:"column:session_user_id;type:uuid;not null;index" json:"session_user_id"`
	SessionGroupID uuid.UUID  `gorm:"column:session_group_id;type:uuid;not null;index" json:"session_group_id"`
	SessionCourtID *uuid.UUID `gorm:"column:session_court_id;type:uuid" json:"session_court_id"`
	SessionSvcID   *uuid.UUID `gorm:"column:session_service_id;type:uuid" json:"session_service_id"`

	SessionDate      datatypes.Date `gorm:"column:session_date;not null;index" json:"session_date"`
	SessionStartTime string         `gorm:"column:session_start_time;type:varchar(5);not null" json:"session_start_time"`
	SessionEndTime   string         `gorm:"column:session_end_time;type:varchar(5);not null" json:"session_end_time"`
	SessionNotes     *string        `gorm:"column:session_notes;type:text" json:"session_notes"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
}

func (GroupSessionModel) TableName() string {
	return "group_sessions"
}

func (m *GroupSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	return nil
}
