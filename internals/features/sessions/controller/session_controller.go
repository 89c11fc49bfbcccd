package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	pkgservice "padelku_backend/internals/features/packages/service"
	"padelku_backend/internals/features/sessions/dto"
	"padelku_backend/internals/features/sessions/model"
	"padelku_backend/internals/features/sessions/service"
	helper "padelku_backend/internals/helpers"
)

var validateSession = validator.New()

type SessionController struct {
	DB     *gorm.DB
	Roster *service.Roster
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Roster: service.NewRoster(db)}
}

// =======================
// 📄 List my sessions (?from=&to= date filter)
// =======================
func (ctrl *SessionController) GetSessions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("session_user_id = ?", userID)
	if from := c.Query("from"); from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		q = q.Where("session_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		if _, err := time.Parse("2006-01-02", to); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		q = q.Where("session_date <= ?", to)
	}

	var sessions []model.GroupSessionModel
	if err := q.Order("session_date ASC, session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sessions")
	}

	out := make([]dto.GroupSessionDTO, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, dto.ToGroupSessionDTO(session))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// ➕ Create session
// =======================
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateGroupSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSession.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.SessionStartTime >= body.SessionEndTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_start_time must be before session_end_time")
	}

	groupID, err := uuid.Parse(body.SessionGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	date, err := time.Parse("2006-01-02", body.SessionDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_date must be YYYY-MM-DD")
	}

	session := model.GroupSessionModel{
		SessionUserID:    userID,
		SessionGroupID:   groupID,
		SessionDate:      datatypes.Date(date),
		SessionStartTime: body.SessionStartTime,
		SessionEndTime:   body.SessionEndTime,
		SessionNotes:     body.SessionNotes,
	}
	if body.SessionCourtID != nil {
		courtID, err := uuid.Parse(*body.SessionCourtID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
		}
		session.SessionCourtID = &courtID
	}
	if body.SessionServiceID != nil {
		serviceID, err := uuid.Parse(*body.SessionServiceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
		}
		session.SessionSvcID = &serviceID
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", dto.ToGroupSessionDTO(session))
}

// =======================
// ✏️ Update session
// =======================
func (ctrl *SessionController) UpdateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var body dto.UpdateGroupSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSession.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var session model.GroupSessionModel
	err = ctrl.DB.First(&session, "session_id = ? AND session_user_id = ?", sessionID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load session")
	}

	updates := map[string]any{}
	if body.SessionCourtID != nil {
		courtID, err := uuid.Parse(*body.SessionCourtID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid court id")
		}
		updates["session_court_id"] = courtID
	}
	if body.SessionServiceID != nil {
		serviceID, err := uuid.Parse(*body.SessionServiceID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid service id")
		}
		updates["session_service_id"] = serviceID
	}
	if body.SessionDate != nil {
		date, err := time.Parse("2006-01-02", *body.SessionDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "session_date must be YYYY-MM-DD")
		}
		updates["session_date"] = datatypes.Date(date)
	}
	if body.SessionStartTime != nil {
		updates["session_start_time"] = *body.SessionStartTime
	}
	if body.SessionEndTime != nil {
		updates["session_end_time"] = *body.SessionEndTime
	}
	if body.SessionNotes != nil {
		updates["session_notes"] = *body.SessionNotes
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&session).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
		}
	}

	if err := ctrl.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload session")
	}
	return helper.JsonUpdated(c, "Session updated", dto.ToGroupSessionDTO(session))
}

// =======================
// 🗑️ Delete session (attendance rows go with it)
// =======================
func (ctrl *SessionController) DeleteSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("session_id = ? AND session_user_id = ?", sessionID, userID).
			Delete(&model.GroupSessionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("attendance_session_id = ?", sessionID).
			Delete(&model.AttendanceModel{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete session")
	}
	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"session_id": sessionID})
}

// =======================
// ✅ Mark attendance
// =======================
func (ctrl *SessionController) MarkAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var body dto.MarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSession.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}
	var clientPackageID *uuid.UUID
	if body.ClientPackageID != nil {
		cpID, err := uuid.Parse(*body.ClientPackageID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client package id")
		}
		clientPackageID = &cpID
	}

	row, err := ctrl.Roster.Mark(userID, sessionID, clientID, body.Status, clientPackageID, time.Now())
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	case errors.Is(err, pkgservice.ErrClientPackageNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Client package not found")
	case errors.Is(err, pkgservice.ErrPackageInactive):
		return helper.JsonError(c, fiber.StatusConflict, "Client package is inactive")
	case errors.Is(err, pkgservice.ErrPackageExpired):
		return helper.JsonError(c, fiber.StatusConflict, "Client package is expired")
	case errors.Is(err, pkgservice.ErrNoSessionsLeft):
		return helper.JsonError(c, fiber.StatusConflict, "No sessions remaining")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	return helper.JsonUpdated(c, "Attendance marked", dto.ToAttendanceDTO(*row))
}

// =======================
// 📄 List attendance of a session
// =======================
func (ctrl *SessionController) GetAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	rows, err := ctrl.Roster.List(userID, sessionID)
	if errors.Is(err, service.ErrSessionNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	out := make([]dto.AttendanceDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToAttendanceDTO(row))
	}
	return helper.JsonOK(c, "ok", out)
}
