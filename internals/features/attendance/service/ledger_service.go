// file: internals/features/attendance/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/attendance/dto"
	"presensiku_backend/internals/features/attendance/model"
	"presensiku_backend/internals/features/attendance/repository"
	"presensiku_backend/internals/helpers/dbtime"
)

var (
	ErrInvalidDate  = errors.New("format tanggal tidak valid (YYYY-MM-DD)")
	ErrInvalidClock = errors.New("format jam tidak valid (HH:MM atau HH:MM:SS)")
)

// LedgerService menjaga invariant satu record per (user, hari kalender).
type LedgerService struct {
	store repository.AttendanceStore
	users UserDirectory
}

func NewLedgerService(store repository.AttendanceStore, users UserDirectory) *LedgerService {
	return &LedgerService{store: store, users: users}
}

// Create menormalisasi momen presensi ke day-key UTC lalu menulis satu
// record. Duplikasi pada hari yang sama ditolak tanpa menyentuh record
// yang sudah ada — penulis pertama menang.
func (s *LedgerService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*model.AttendanceModel, error) {
	status := constants.StatusPresent
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = strings.TrimSpace(*req.Status)
	}

	at := time.Now().UTC()
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d, err := dbtime.ParseDate(*req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		at = d
		// Jam boleh ikut dikirim; day-key tetap mengabaikannya,
		// sehingga 08:00 dan 17:30 di hari yang sama pasti bentrok.
		if req.Time != nil && strings.TrimSpace(*req.Time) != "" {
			clk, err := dbtime.ParseClock(*req.Time)
			if err != nil {
				return nil, ErrInvalidClock
			}
			at = dbtime.Combine(d, clk)
		}
	}
	dayKey := dbtime.StartOfDayUTC(at)

	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Cek eksistensi untuk pesan yang ramah; constraint DB tetap
	// menangkap balapan antara cek dan insert.
	existing, err := s.store.FindByUserAndDate(ctx, req.UserID, dayKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrDuplicateRecord
	}

	rec := &model.AttendanceModel{
		AttendanceUserID: req.UserID,
		AttendanceDate:   datatypes.Date(dayKey),
		AttendanceStatus: status,
		AttendanceNote:   req.Note,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// History mengembalikan seluruh record user, tanggal terbaru dulu.
func (s *LedgerService) History(ctx context.Context, userID int) ([]model.AttendanceModel, error) {
	return s.store.ListByUser(ctx, userID)
}
