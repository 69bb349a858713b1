// file: internals/helpers/dbtime/day.go
package dbtime

import (
	"strings"
	"time"
)

// Semua perhitungan kalender di-anchor ke UTC supaya day-key & window
// bulanan konsisten antar caller dengan offset lokal berbeda.

const DateLayout = "2006-01-02"

// StartOfDayUTC memotong komponen jam dari sebuah momen.
// Dua request di hari kalender (UTC) yang sama selalu menghasilkan
// day-key identik — kunci dari constraint (user_id, date).
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthWindowUTC mengembalikan window inklusif satu bulan kalender:
// tanggal 1 00:00:00 s/d hari terakhir 23:59:59.999999999.
func MonthWindowUTC(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// DaysInMonth menghitung jumlah hari kalender pada bulan tsb
// (denominator persentase bulanan, bukan jumlah record).
func DaysInMonth(year, month int) int {
	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate menerima "YYYY-MM-DD".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseClock menerima "HH:MM" atau "HH:MM:SS".
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	return time.Parse("15:04:05", s)
}

// Combine menempelkan jam ke sebuah tanggal (keduanya UTC).
// Hasilnya tetap dinormalisasi StartOfDayUTC sebelum disimpan;
// Combine hanya dipakai untuk memvalidasi input date+time gabungan.
func Combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}
