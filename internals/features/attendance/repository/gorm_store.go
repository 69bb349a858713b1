// file: internals/features/attendance/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/attendance/model"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) AttendanceStore {
	return &gormStore{db: db}
}

func (s *gormStore) FindByUserAndDate(ctx context.Context, userID int, day time.Time) (*model.AttendanceModel, error) {
	var rec model.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_date = ?", userID, datatypes.Date(day)).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *gormStore) Insert(ctx context.Context, rec *model.AttendanceModel) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translateInsertError(err)
	}
	return nil
}

func (s *gormStore) ListByUser(ctx context.Context, userID int) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("attendance_user_id = ?", userID).
		Order("attendance_date DESC, attendance_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) ListByUserBetween(ctx context.Context, userID int, start, end time.Time) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("attendance_user_id = ?", userID).
		Where("attendance_date BETWEEN ? AND ?", datatypes.Date(start), datatypes.Date(end)).
		Order("attendance_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) ListBetween(ctx context.Context, start, end time.Time) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("attendance_date BETWEEN ? AND ?", datatypes.Date(start), datatypes.Date(end)).
		Order("attendance_date ASC, attendance_user_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// translateInsertError menerjemahkan unique violation (23505) dari
// pgx maupun lib/pq menjadi ErrDuplicateRecord; error lain diteruskan.
func translateInsertError(err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return ErrDuplicateRecord
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return ErrDuplicateRecord
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRecord
	}
	return err
}
