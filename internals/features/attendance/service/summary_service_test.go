package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensiku_backend/internals/constants"
)

func TestSummaryMonthly_Deterministic(t *testing.T) {
	store := &fakeStore{}
	store.seed(1, 2024, 5, 1, constants.StatusPresent)
	store.seed(1, 2024, 5, 2, constants.StatusLate)
	store.seed(1, 2024, 5, 3, constants.StatusAbsent)

	summary, err := NewSummaryService(store).Monthly(context.Background(), 1, 2024, 5)
	require.NoError(t, err)

	assert.Equal(t, 31, summary.TotalDays)
	assert.Equal(t, 1, summary.Counts[constants.StatusPresent])
	assert.Equal(t, 1, summary.Counts[constants.StatusLate])
	assert.Equal(t, 1, summary.Counts[constants.StatusAbsent])
	// 1 hadir dari 31 hari kalender, bukan dari 3 record
	assert.InDelta(t, 3.23, summary.Percent, 0.01)
	assert.Len(t, summary.Records, 3)
}

func TestSummaryMonthly_DenominatorIsCalendarMonth(t *testing.T) {
	store := &fakeStore{}
	// 10 record di bulan 30 hari, 8 di antaranya present
	for day := 1; day <= 8; day++ {
		store.seed(1, 2024, 6, day, constants.StatusPresent)
	}
	store.seed(1, 2024, 6, 9, constants.StatusLate)
	store.seed(1, 2024, 6, 10, constants.StatusAbsent)

	summary, err := NewSummaryService(store).Monthly(context.Background(), 1, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.TotalDays)
	// 8/30, bukan 8/10
	assert.InDelta(t, 26.67, summary.Percent, 0.01)
}

func TestSummaryMonthly_EmptyMonth(t *testing.T) {
	summary, err := NewSummaryService(&fakeStore{}).Monthly(context.Background(), 1, 2024, 2)
	require.NoError(t, err)

	assert.Equal(t, 29, summary.TotalDays) // 2024 kabisat
	assert.Empty(t, summary.Counts)
	assert.Zero(t, summary.Percent)
	assert.Empty(t, summary.Records)
}

func TestSummaryMonthly_IgnoresNeighborMonths(t *testing.T) {
	store := &fakeStore{}
	store.seed(1, 2024, 4, 30, constants.StatusPresent)
	store.seed(1, 2024, 5, 31, constants.StatusPresent)
	store.seed(1, 2024, 6, 1, constants.StatusPresent)
	store.seed(2, 2024, 5, 15, constants.StatusPresent) // user lain

	summary, err := NewSummaryService(store).Monthly(context.Background(), 1, 2024, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Counts[constants.StatusPresent])
	assert.Len(t, summary.Records, 1)
}

func TestSummaryMonthly_OpenStatusVocabulary(t *testing.T) {
	store := &fakeStore{}
	store.seed(1, 2024, 5, 1, "hadir")
	store.seed(1, 2024, 5, 2, "izin")
	store.seed(1, 2024, 5, 3, "sakit")

	summary, err := NewSummaryService(store).Monthly(context.Background(), 1, 2024, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Counts["hadir"])
	assert.Equal(t, 1, summary.Counts["izin"])
	assert.Equal(t, 1, summary.Counts["sakit"])
	assert.Zero(t, summary.Percent) // tak ada status "present"
}
