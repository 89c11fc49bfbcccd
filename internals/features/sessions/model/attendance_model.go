package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceExcused = "excused"
)

// AttendanceModel records one client's attendance on one session. One row per
// (session, client); marking again updates the row. PackageConsumed
// remembers that this row already burned a package session, so flipping the
// status back and forth never decrements twice.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:idx_attendance_session_client" json:"attendance_session_id"`
	AttendanceClientID  uuid.UUID `gorm:"column:attendance_client_id;type:uuid;not null;uniqueIndex:idx_attendance_session_client" json:"attendance_client_id"`

	AttendanceStatus          string     `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceClientPackageID *uuid.UUID `gorm:"column:attendance_client_package_id;type:uuid" json:"attendance_client_package_id"`
	AttendancePackageConsumed bool       `gorm:"column:attendance_package_consumed;not null;default:false" json:"attendance_package_consumed"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
