package users

import (
	"log"

	"gorm.io/gorm"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/users/model"
)

// ensureUser idempotent: user yang sudah ada (berdasarkan email) tidak
// dibuat duplikat.
func ensureUser(db *gorm.DB, email, name, role string, class, position *string) (model.UserModel, error) {
	var u model.UserModel
	err := db.
		Where("user_email = ?", email).
		Attrs(model.UserModel{
			UserEmail:    email,
			UserName:     name,
			UserRole:     role,
			UserClass:    class,
			UserPosition: position,
		}).
		FirstOrCreate(&u).Error
	return u, err
}

func strPtr(s string) *string { return &s }

// SeedUsers memastikan 1 admin + 2 siswa contoh.
func SeedUsers(db *gorm.DB) ([]model.UserModel, error) {
	admin, err := ensureUser(db, "admin@example.com", "Administrator", constants.RoleAdmin, nil, strPtr("Kepala Sekolah"))
	if err != nil {
		return nil, err
	}
	studentA, err := ensureUser(db, "student1@example.com", "Siswa Satu", constants.RoleStudent, strPtr("X-A"), nil)
	if err != nil {
		return nil, err
	}
	studentB, err := ensureUser(db, "student2@example.com", "Siswa Dua", constants.RoleStudent, strPtr("X-B"), nil)
	if err != nil {
		return nil, err
	}

	log.Printf("Users ensured: %s, %s, %s", admin.UserEmail, studentA.UserEmail, studentB.UserEmail)
	return []model.UserModel{admin, studentA, studentB}, nil
}
