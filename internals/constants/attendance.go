package constants

// Status kehadiran kanonik untuk deployment ini.
// Vocabulary-nya terbuka: summarizer menghitung per-status apa adanya,
// konstanta di bawah dipakai untuk default, analyzer, dan seeder.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

var KnownStatuses = []string{
	StatusPresent,
	StatusLate,
	StatusAbsent,
}

// Atribut grouping yang diekspos direktori user untuk analisis.
const (
	GroupByClass    = "class"
	GroupByPosition = "position"

	// Bucket fallback saat atribut user kosong.
	GroupUnknown = "Unknown"
)
