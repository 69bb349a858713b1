package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensiku_backend/internals/constants"
)

func analyzeWindow() (time.Time, time.Time) {
	return time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
}

func TestAnalyze_EmptyRangeZeroGuard(t *testing.T) {
	analyzer := NewAnalyzerService(&fakeStore{}, &fakeDirectory{})
	start, end := analyzeWindow()

	result, err := analyzer.Analyze(context.Background(), start, end, "")
	require.NoError(t, err)

	assert.Zero(t, result.Total)
	// 0/0 wajib menghasilkan sentinel, bukan NaN
	assert.Equal(t, "0.00%", result.PresentPercentage)
	assert.Nil(t, result.Grouped)
}

func TestAnalyze_OverallCounts(t *testing.T) {
	store := &fakeStore{}
	store.seed(1, 2024, 5, 1, constants.StatusPresent)
	store.seed(1, 2024, 5, 2, constants.StatusPresent)
	store.seed(1, 2024, 5, 3, constants.StatusAbsent)
	store.seed(2, 2024, 5, 1, constants.StatusLate)
	store.seed(2, 2024, 5, 2, constants.StatusPresent)
	store.seed(1, 2024, 6, 1, constants.StatusPresent) // di luar rentang

	analyzer := NewAnalyzerService(store, &fakeDirectory{})
	start, end := analyzeWindow()

	result, err := analyzer.Analyze(context.Background(), start, end, "")
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Present)
	assert.Equal(t, 1, result.Late)
	assert.Equal(t, 1, result.Absent)
	assert.Equal(t, "60.00%", result.PresentPercentage)
}

func TestAnalyze_GroupedByClass(t *testing.T) {
	store := &fakeStore{}
	// kelas A (user 1): 2 present + 1 absent
	store.seed(1, 2024, 5, 1, constants.StatusPresent)
	store.seed(1, 2024, 5, 2, constants.StatusPresent)
	store.seed(1, 2024, 5, 3, constants.StatusAbsent)
	// kelas B (user 2): 1 present + 1 late
	store.seed(2, 2024, 5, 1, constants.StatusPresent)
	store.seed(2, 2024, 5, 2, constants.StatusLate)
	// user 3 tanpa kelas: 1 present → bucket "Unknown"
	store.seed(3, 2024, 5, 1, constants.StatusPresent)

	directory := &fakeDirectory{users: map[int]DirectoryUser{
		1: {ID: 1, Class: strPtr("A")},
		2: {ID: 2, Class: strPtr("B")},
		3: {ID: 3},
	}}

	analyzer := NewAnalyzerService(store, directory)
	start, end := analyzeWindow()

	result, err := analyzer.Analyze(context.Background(), start, end, constants.GroupByClass)
	require.NoError(t, err)
	require.Len(t, result.Grouped, 3)

	a := result.Grouped["A"]
	assert.Equal(t, 3, a.Total)
	assert.Equal(t, 2, a.Present)
	assert.Equal(t, "66.67%", a.Percentage)

	b := result.Grouped["B"]
	assert.Equal(t, 2, b.Total)
	assert.Equal(t, 1, b.Present)
	assert.Equal(t, "50.00%", b.Percentage)

	unknown := result.Grouped[constants.GroupUnknown]
	assert.Equal(t, 1, unknown.Total)
	assert.Equal(t, "100.00%", unknown.Percentage)

	// total per bucket harus menjumlah ke total keseluruhan
	sum := 0
	for _, g := range result.Grouped {
		sum += g.Total
	}
	assert.Equal(t, result.Total, sum)
}

func TestAnalyze_GroupedByPosition(t *testing.T) {
	store := &fakeStore{}
	store.seed(1, 2024, 5, 1, constants.StatusPresent)
	store.seed(2, 2024, 5, 1, constants.StatusAbsent)

	directory := &fakeDirectory{users: map[int]DirectoryUser{
		1: {ID: 1, Position: strPtr("Guru")},
		2: {ID: 2, Position: strPtr("Guru")},
	}}

	analyzer := NewAnalyzerService(store, directory)
	start, end := analyzeWindow()

	result, err := analyzer.Analyze(context.Background(), start, end, constants.GroupByPosition)
	require.NoError(t, err)
	require.Len(t, result.Grouped, 1)

	guru := result.Grouped["Guru"]
	assert.Equal(t, 2, guru.Total)
	assert.Equal(t, 1, guru.Present)
	assert.Equal(t, "50.00%", guru.Percentage)
}

func TestAnalyze_RecordOfUnknownUserFallsToUnknownBucket(t *testing.T) {
	store := &fakeStore{}
	store.seed(7, 2024, 5, 1, constants.StatusPresent)

	// direktori tidak mengenal user 7 sama sekali
	analyzer := NewAnalyzerService(store, &fakeDirectory{users: map[int]DirectoryUser{}})
	start, end := analyzeWindow()

	result, err := analyzer.Analyze(context.Background(), start, end, constants.GroupByClass)
	require.NoError(t, err)
	require.Len(t, result.Grouped, 1)
	assert.Equal(t, 1, result.Grouped[constants.GroupUnknown].Total)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.00%", FormatPercent(0, 0))
	assert.Equal(t, "0.00%", FormatPercent(0, 10))
	assert.Equal(t, "33.33%", FormatPercent(1, 3))
	assert.Equal(t, "100.00%", FormatPercent(5, 5))

	assert.Zero(t, PercentOf(3, 0))
	assert.InDelta(t, 26.67, PercentOf(8, 30), 0.01)
}
