// file: internals/features/attendance/service/analyzer_service.go
package service

import (
	"context"
	"strings"
	"time"

	"presensiku_backend/internals/constants"
	"presensiku_backend/internals/features/attendance/dto"
	"presensiku_backend/internals/features/attendance/repository"
)

// AnalyzerService mengagregasi kehadiran lintas user pada rentang
// tanggal bebas, dengan partisi opsional per atribut user.
type AnalyzerService struct {
	store repository.AttendanceStore
	users UserDirectory
}

func NewAnalyzerService(store repository.AttendanceStore, users UserDirectory) *AnalyzerService {
	return &AnalyzerService{store: store, users: users}
}

// Analyze menghitung total/present/late/absent pada [start, end]
// inklusif. groupBy kosong = tanpa partisi; selain itu harus salah satu
// atribut grouping direktori (class/position).
func (s *AnalyzerService) Analyze(ctx context.Context, start, end time.Time, groupBy string) (*dto.AnalyzeResponse, error) {
	rows, err := s.store.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyzeResponse{Total: len(rows)}
	for _, rec := range rows {
		switch rec.AttendanceStatus {
		case constants.StatusPresent:
			resp.Present++
		case constants.StatusLate:
			resp.Late++
		case constants.StatusAbsent:
			resp.Absent++
		}
	}
	resp.PresentPercentage = FormatPercent(resp.Present, resp.Total)

	if groupBy == "" {
		return resp, nil
	}

	// Atribut owner diambil batch dari direktori, satu lookup per user.
	ids := make([]int, 0, len(rows))
	seen := make(map[int]struct{}, len(rows))
	for _, rec := range rows {
		if _, ok := seen[rec.AttendanceUserID]; ok {
			continue
		}
		seen[rec.AttendanceUserID] = struct{}{}
		ids = append(ids, rec.AttendanceUserID)
	}

	users, err := s.users.MapByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	type bucket struct{ total, present int }
	buckets := make(map[string]*bucket)
	for _, rec := range rows {
		key := groupValue(users, rec.AttendanceUserID, groupBy)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.total++
		if rec.AttendanceStatus == constants.StatusPresent {
			b.present++
		}
	}

	resp.Grouped = make(map[string]dto.AnalyzeGroup, len(buckets))
	for key, b := range buckets {
		resp.Grouped[key] = dto.AnalyzeGroup{
			Total:      b.total,
			Present:    b.present,
			Percentage: FormatPercent(b.present, b.total),
		}
	}
	return resp, nil
}

// groupValue membaca atribut grouping owner record; user tak dikenal
// atau atribut kosong jatuh ke bucket "Unknown".
func groupValue(users map[int]DirectoryUser, userID int, attr string) string {
	u, ok := users[userID]
	if !ok {
		return constants.GroupUnknown
	}

	var v *string
	switch attr {
	case constants.GroupByClass:
		v = u.Class
	case constants.GroupByPosition:
		v = u.Position
	}
	if v == nil || strings.TrimSpace(*v) == "" {
		return constants.GroupUnknown
	}
	return *v
}
