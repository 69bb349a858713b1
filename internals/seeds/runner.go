package seeds

import (
	"log"

	"gorm.io/gorm"

	attendanceSeed "presensiku_backend/internals/seeds/attendance"
	usersSeed "presensiku_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data contoh secara idempotent:
// 1 admin + 2 siswa, lalu presensi 7 hari terakhir per user.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Start seeding...")

	users, err := usersSeed.SeedUsers(db)
	if err != nil {
		log.Fatalf("❌ Seeding users gagal: %v", err)
	}

	if err := attendanceSeed.SeedLastWeek(db, users); err != nil {
		log.Fatalf("❌ Seeding attendance gagal: %v", err)
	}

	log.Println("✅ Seeding finished.")
}
