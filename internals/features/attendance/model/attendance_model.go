package model

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceModel = satu record presensi per (user, hari kalender).
// Kolom date bertipe DATE (day-key, tanpa komponen jam); unique index
// komposit di bawah adalah invariant utama seluruh modul.
type AttendanceModel struct {
	AttendanceID     int            `gorm:"primaryKey;autoIncrement;column:attendance_id" json:"attendance_id"`
	AttendanceUserID int            `gorm:"not null;column:attendance_user_id;uniqueIndex:uq_attendance_user_date" json:"attendance_user_id"`
	AttendanceDate   datatypes.Date `gorm:"type:date;not null;column:attendance_date;uniqueIndex:uq_attendance_user_date" json:"attendance_date"`
	AttendanceStatus string         `gorm:"size:20;not null;default:present;column:attendance_status" json:"attendance_status"`
	AttendanceNote   *string        `gorm:"size:255;column:attendance_note" json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

// Day mengembalikan day-key record sebagai time.Time UTC.
func (m AttendanceModel) Day() time.Time {
	t := time.Time(m.AttendanceDate)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
