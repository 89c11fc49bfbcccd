package dto

import (
	"time"

	"padelku_backend/internals/features/sessions/model"
)

// ============================
// Group sessions
// ============================

type GroupSessionDTO struct {
	SessionID        string    `json:"session_id"`
	SessionUserID    string    `json:"session_user_id"`
	SessionGroupID   string    `json:"session_group_id"`
	SessionCourtID   *string   `json:"session_court_id"`
	SessionServiceID *string   `json:"session_service_id"`
	SessionDate      string    `json:"session_date"`
	SessionStartTime string    `json:"session_start_time"`
	SessionEndTime   string    `json:"session_end_time"`
	SessionNotes     *string   `json:"session_notes"`
	SessionCreatedAt time.Time `json:"session_created_at"`
	SessionUpdatedAt time.Time `json:"session_updated_at"`
}

type CreateGroupSessionRequest struct {
	SessionGroupID   string  `json:"session_group_id" validate:"required,uuid4"`
	SessionCourtID   *string `json:"session_court_id" validate:"omitempty,uuid4"`
	SessionServiceID *string `json:"session_service_id" validate:"omitempty,uuid4"`
	SessionDate      string  `json:"session_date" validate:"required,datetime=2006-01-02"`
	SessionStartTime string  `json:"session_start_time" validate:"required,len=5"`
	SessionEndTime   string  `json:"session_end_time" validate:"required,len=5"`
	SessionNotes     *string `json:"session_notes"`
}

type UpdateGroupSessionRequest struct {
	SessionCourtID   *string `json:"session_court_id" validate:"omitempty,uuid4"`
	SessionServiceID *string `json:"session_service_id" validate:"omitempty,uuid4"`
	SessionDate      *string `json:"session_date" validate:"omitempty,datetime=2006-01-02"`
	SessionStartTime *string `json:"session_start_time" validate:"omitempty,len=5"`
	SessionEndTime   *string `json:"session_end_time" validate:"omitempty,len=5"`
	SessionNotes     *string `json:"session_notes"`
}

func ToGroupSessionDTO(m model.GroupSessionModel) GroupSessionDTO {
	var courtID, serviceID *string
	if m.SessionCourtID != nil {
		s := m.SessionCourtID.String()
		courtID = &s
	}
	if m.SessionSvcID != nil {
		s := m.SessionSvcID.String()
		serviceID = &s
	}
	return GroupSessionDTO{
		SessionID:        m.SessionID.String(),
		SessionUserID:    m.SessionUserID.String(),
		SessionGroupID:   m.SessionGroupID.String(),
		SessionCourtID:   courtID,
		SessionServiceID: serviceID,
		SessionDate:      time.Time(m.SessionDate).Format("2006-01-02"),
		SessionStartTime: m.SessionStartTime,
		SessionEndTime:   m.SessionEndTime,
		SessionNotes:     m.SessionNotes,
		SessionCreatedAt: m.SessionCreatedAt,
		SessionUpdatedAt: m.SessionUpdatedAt,
	}
}

// ============================
// Attendance
// ============================

type AttendanceDTO struct {
	AttendanceID              string    `json:"attendance_id"`
	AttendanceSessionID       string    `json:"attendance_session_id"`
	AttendanceClientID        string    `json:"attendance_client_id"`
	AttendanceStatus          string    `json:"attendance_status"`
	AttendanceClientPackageID *string   `json:"attendance_client_package_id"`
	AttendancePackageConsumed bool      `json:"attendance_package_consumed"`
	AttendanceCreatedAt       time.Time `json:"attendance_created_at"`
	AttendanceUpdatedAt       time.Time `json:"attendance_updated_at"`
}

type MarkAttendanceRequest struct {
	ClientID        string  `json:"client_id" validate:"required,uuid4"`
	Status          string  `json:"status" validate:"required,oneof=present absent excused"`
	ClientPackageID *string `json:"client_package_id" validate:"omitempty,uuid4"`
}

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	var cpID *string
	if m.AttendanceClientPackageID != nil {
		s := m.AttendanceClientPackageID.String()
		cpID = &s
	}
	return AttendanceDTO{
		AttendanceID:              m.AttendanceID.String(),
		AttendanceSessionID:       m.AttendanceSessionID.String(),
		AttendanceClientID:        m.AttendanceClientID.String(),
		AttendanceStatus:          m.AttendanceStatus,
		AttendanceClientPackageID: cpID,
		AttendancePackageConsumed: m.AttendancePackageConsumed,
		AttendanceCreatedAt:       m.AttendanceCreatedAt,
		AttendanceUpdatedAt:       m.AttendanceUpdatedAt,
	}
}
