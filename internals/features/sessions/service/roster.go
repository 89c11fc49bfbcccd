package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgservice "padelku_backend/internals/features/packages/service"
	"padelku_backend/internals/features/sessions/model"
)

var ErrSessionNotFound = errors.New("session not found")

// Roster marks attendance on group sessions. Package consumption is
// delegated to the packages feature.
type Roster struct {
	DB *gorm.DB
}

func NewRoster(db *gorm.DB) *Roster {
	return &Roster{DB: db}
}

// Mark upserts the (session, client) attendance row. When the status lands
// on present with a client package attached, one session is burned off the
// package, exactly once per attendance row regardless of later re-marks.
// The upsert and the consumption commit or roll back together, so a
// rejected consumption never leaves a present row behind.
func (s *Roster) Mark(userID, sessionID, clientID uuid.UUID, status string, clientPackageID *uuid.UUID, now time.Time) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var session model.GroupSessionModel
		err := tx.First(&session,
			"session_id = ? AND session_user_id = ?", sessionID, userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		err = tx.First(&row,
			"attendance_session_id = ? AND attendance_client_id = ?", sessionID, clientID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = model.AttendanceModel{
				AttendanceSessionID:       sessionID,
				AttendanceClientID:        clientID,
				AttendanceStatus:          status,
				AttendanceClientPackageID: clientPackageID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			updates := map[string]any{"attendance_status": status}
			if clientPackageID != nil {
				updates["attendance_client_package_id"] = clientPackageID
			}
			if err := tx.Model(&row).Updates(updates).Error; err != nil {
				return err
			}
			row.AttendanceStatus = status
			if clientPackageID != nil {
				row.AttendanceClientPackageID = clientPackageID
			}
		}

		if status == model.AttendancePresent &&
			row.AttendanceClientPackageID != nil &&
			!row.AttendancePackageConsumed {
			usage := &pkgservice.Usage{DB: tx}
			if _, err := usage.UseSession(userID, *row.AttendanceClientPackageID, now); err != nil {
				return err
			}
			if err := tx.Model(&row).
				Update("attendance_package_consumed", true).Error; err != nil {
				return err
			}
			row.AttendancePackageConsumed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the attendance rows of one session.
func (s *Roster) List(userID, sessionID uuid.UUID) ([]model.AttendanceModel, error) {
	var count int64
	err := s.DB.Model(&model.GroupSessionModel{}).
		Where("session_id = ? AND session_user_id = ?", sessionID, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrSessionNotFound
	}

	var rows []model.AttendanceModel
	err = s.DB.
		Where("attendance_session_id = ?", sessionID).
		Order("attendance_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
