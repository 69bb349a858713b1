package attendance

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"presensiku_backend/internals/constants"
	attendanceModel "presensiku_backend/internals/features/attendance/model"
	userModel "presensiku_backend/internals/features/users/model"
	"presensiku_backend/internals/helpers/dbtime"
)

// ensureAttendance: insert-if-absent via constraint komposit —
// record yang sudah ada untuk (user, hari) dibiarkan apa adanya.
func ensureAttendance(db *gorm.DB, userID int, day time.Time, status, note string) error {
	rec := attendanceModel.AttendanceModel{
		AttendanceUserID: userID,
		AttendanceDate:   datatypes.Date(dbtime.StartOfDayUTC(day)),
		AttendanceStatus: status,
		AttendanceNote:   &note,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_user_id"},
			{Name: "attendance_date"},
		},
		DoNothing: true,
	}).Create(&rec).Error
}

func noteFor(status string) string {
	switch status {
	case constants.StatusLate:
		return "Telat karena transportasi"
	case constants.StatusAbsent:
		return "Tidak hadir"
	default:
		return "Hadir tepat waktu"
	}
}

// SeedLastWeek mengisi presensi 7 hari terakhir untuk tiap user:
// user pertama (admin) selalu present, siswa diberi sedikit variasi.
func SeedLastWeek(db *gorm.DB, users []userModel.UserModel) error {
	variations := [][]string{
		{constants.StatusPresent, constants.StatusPresent, constants.StatusPresent, constants.StatusPresent, constants.StatusPresent, constants.StatusPresent, constants.StatusPresent},
		{constants.StatusPresent, constants.StatusPresent, constants.StatusLate, constants.StatusPresent, constants.StatusPresent, constants.StatusPresent, constants.StatusAbsent},
		{constants.StatusPresent, constants.StatusLate, constants.StatusLate, constants.StatusAbsent, constants.StatusPresent, constants.StatusAbsent, constants.StatusPresent},
	}

	now := time.Now().UTC()
	for idx, u := range users {
		pattern := variations[idx%len(variations)]
		for i := 0; i < 7; i++ {
			day := now.AddDate(0, 0, -i)
			status := pattern[i%len(pattern)]
			if err := ensureAttendance(db, u.UserID, day, status, noteFor(status)); err != nil {
				return err
			}
		}
	}
	return nil
}
