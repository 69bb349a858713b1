// file: internals/features/users/service/user_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/users/dto"
	"presensiku_backend/internals/features/users/model"
)

var (
	ErrUserNotFound = errors.New("user tidak ditemukan")
	ErrEmailTaken   = errors.New("email sudah terdaftar")
)

// UserService adalah direktori user: resolve id/email → atribut user.
// Juga melayani CRUD user dari boundary HTTP.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := constants.RoleStudent
	if req.Role != nil && strings.TrimSpace(*req.Role) != "" {
		role = *req.Role
	}

	u := &model.UserModel{
		UserEmail:    email,
		UserName:     strings.TrimSpace(req.Name),
		UserRole:     role,
		UserClass:    req.Class,
		UserPosition: req.Position,
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		// unique index email tetap jadi garis pertahanan saat balapan
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.UserModel
	err := s.db.WithContext(ctx).
		Order("user_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *UserService) FindByID(ctx context.Context, id int) (*model.UserModel, error) {
	var u model.UserModel
	err := s.db.WithContext(ctx).
		Where("user_id = ?", id).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail mengembalikan (nil, nil) saat tidak ada — kontrak
// "User | null" dari direktori, bukan error.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := s.db.WithContext(ctx).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (*model.UserModel, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) > 0 {
		err := s.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("user_id = ?", id).
			Updates(updates).Error
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

// ListByIDs batch-lookup untuk analyzer (satu query, bukan N).
func (s *UserService) ListByIDs(ctx context.Context, ids []int) ([]model.UserModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []model.UserModel
	err := s.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// isUniqueViolation mengenali Postgres 23505 dari pgx maupun lib/pq.
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
