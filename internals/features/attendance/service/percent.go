// file: internals/features/attendance/service/percent.go
package service

import "fmt"

// Semua persentase lewat dua fungsi ini: denominator nol tidak boleh
// menghasilkan NaN, melainkan nilai sentinel 0 / "0.00%".

func PercentOf(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}

func FormatPercent(n, d int) string {
	if d == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(d)*100)
}
