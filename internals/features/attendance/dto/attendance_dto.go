// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	m "presensiku_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON) — satu bentuk request eksplisit:
// date/time/status/note opsional dengan aturan default di ledger
// (status → "present", date → hari ini).
type CreateAttendanceRequest struct {
	UserID int     `json:"user_id" validate:"required,min=1"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time" validate:"omitempty,max=8"` // HH:MM[:SS]
	Status *string `json:"status" validate:"omitempty,max=20"`
	Note   *string `json:"note" validate:"omitempty,max=255"`
}

// Analyze (JSON) — rentang tanggal inklusif + grouping opsional.
// group_by divalidasi terhadap atribut yang memang diekspos direktori.
type AnalyzeRequest struct {
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	GroupBy   *string `json:"group_by" validate:"omitempty,oneof=class position"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MonthlySummaryResponse struct {
	TotalDays int                  `json:"total_days"`
	Counts    map[string]int       `json:"counts"`
	Percent   float64              `json:"percent"`
	Records   []AttendanceResponse `json:"records"`
}

type AnalyzeGroup struct {
	Total      int    `json:"total"`
	Present    int    `json:"present"`
	Percentage string `json:"percentage"`
}

type AnalyzeResponse struct {
	Total             int                     `json:"total"`
	Present           int                     `json:"present"`
	Late              int                     `json:"late"`
	Absent            int                     `json:"absent"`
	PresentPercentage string                  `json:"present_percentage"`
	Grouped           map[string]AnalyzeGroup `json:"grouped,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromAttendanceModel(rec m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        rec.AttendanceID,
		UserID:    rec.AttendanceUserID,
		Date:      rec.Day(),
		Status:    rec.AttendanceStatus,
		Note:      rec.AttendanceNote,
		CreatedAt: rec.AttendanceCreatedAt,
		UpdatedAt: rec.AttendanceUpdatedAt,
	}
}

func FromAttendanceModels(rows []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, rec := range rows {
		out = append(out, FromAttendanceModel(rec))
	}
	return out
}
