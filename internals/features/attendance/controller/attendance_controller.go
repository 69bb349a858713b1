// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/dto"
	"presensiku_backend/internals/features/attendance/repository"
	"presensiku_backend/internals/features/attendance/service"
	usersvc "presensiku_backend/internals/features/users/service"
	helper "presensiku_backend/internals/helpers"
	"presensiku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	Ledger   *service.LedgerService
	Summary  *service.SummaryService
	Analyzer *service.AnalyzerService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	store := repository.NewGormStore(db)
	directory := service.NewUserDirectory(usersvc.NewUserService(db))
	return &AttendanceController{
		Ledger:   service.NewLedgerService(store, directory),
		Summary:  service.NewSummaryService(store),
		Analyzer: service.NewAnalyzerService(store, directory),
	}
}

/* ===================== CREATE ===================== */
// POST /api/attendance
func (ctrl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	rec, err := ctrl.Ledger.Create(c.UserContext(), &req)
	if err != nil {
		return ctrl.jsonServiceError(c, err)
	}
	return helper.JsonCreated(c, "Presensi berhasil dicatat", dto.FromAttendanceModel(*rec))
}

/* ===================== HISTORY ===================== */
// GET /api/attendance/history/:user_id
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil || userID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	rows, err := ctrl.Ledger.History(c.UserContext(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat presensi")
	}
	return helper.JsonList(c, "Riwayat presensi", dto.FromAttendanceModels(rows), nil)
}

/* ===================== MONTHLY SUMMARY ===================== */
// GET /api/attendance/summary/:user_id/:year/:month
func (ctrl *AttendanceController) MonthlySummary(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("user_id"))
	if err != nil || userID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan harus 1..12")
	}

	summary, err := ctrl.Summary.Monthly(c.UserContext(), userID, year, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan bulanan")
	}
	return helper.JsonOK(c, "Ringkasan bulanan", summary)
}

/* ===================== ANALYSIS ===================== */
// POST /api/attendance/analysis
func (ctrl *AttendanceController) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	start, err := dbtime.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date tidak valid")
	}
	end, err := dbtime.ParseDate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date tidak valid")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rentang tanggal tidak valid: end_date sebelum start_date")
	}

	groupBy := ""
	if req.GroupBy != nil {
		groupBy = *req.GroupBy
	}

	result, err := ctrl.Analyzer.Analyze(c.UserContext(), start, end, groupBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menganalisis kehadiran")
	}
	return helper.JsonOK(c, "Hasil analisis kehadiran", result)
}

/* ===================== ERROR MAPPING ===================== */

func (ctrl *AttendanceController) jsonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateRecord):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, usersvc.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrInvalidClock):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
