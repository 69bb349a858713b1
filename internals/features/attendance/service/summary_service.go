// file: internals/features/attendance/service/summary_service.go
package service

import (
	"context"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/attendance/dto"
	"presensiku_backend/internals/features/attendance/repository"
	"presensiku_backend/internals/helpers/dbtime"
)

// SummaryService menghitung statistik satu user untuk satu bulan kalender.
type SummaryService struct {
	store repository.AttendanceStore
}

func NewSummaryService(store repository.AttendanceStore) *SummaryService {
	return &SummaryService{store: store}
}

// Monthly: window bulan penuh (UTC), denominator = jumlah hari kalender
// bulan itu — bukan jumlah record. Bulan kosong menghasilkan summary
// nol yang valid, bukan error.
func (s *SummaryService) Monthly(ctx context.Context, userID, year, month int) (*dto.MonthlySummaryResponse, error) {
	start, end := dbtime.MonthWindowUTC(year, month)

	rows, err := s.store.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, rec := range rows {
		counts[rec.AttendanceStatus]++
	}

	totalDays := dbtime.DaysInMonth(year, month)
	return &dto.MonthlySummaryResponse{
		TotalDays: totalDays,
		Counts:    counts,
		Percent:   PercentOf(counts[constants.StatusPresent], totalDays),
		Records:   dto.FromAttendanceModels(rows),
	}, nil
}
