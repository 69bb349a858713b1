// file: internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"presensiku_backend/internals/features/attendance/model"
)

var ErrDuplicateRecord = errors.New("user sudah presensi pada tanggal tersebut")

// AttendanceStore kapabilitas persistensi ledger: findOne / insert /
// findMany. Insert WAJIB gagal dengan ErrDuplicateRecord saat constraint
// (user_id, date) dilanggar — pengecekan aplikasi saja tidak cukup
// saat ada request paralel untuk user+hari yang sama.
type AttendanceStore interface {
	// FindByUserAndDate mengembalikan (nil, nil) saat tidak ada.
	FindByUserAndDate(ctx context.Context, userID int, day time.Time) (*model.AttendanceModel, error)
	Insert(ctx context.Context, rec *model.AttendanceModel) error
	// ListByUser terurut tanggal DESC (terbaru dulu).
	ListByUser(ctx context.Context, userID int) ([]model.AttendanceModel, error)
	ListByUserBetween(ctx context.Context, userID int, start, end time.Time) ([]model.AttendanceModel, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]model.AttendanceModel, error)
}
