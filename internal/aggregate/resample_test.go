package aggregate

import (
	"testing"
	"time"

	"github.com/jonathan/geo-radar/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(ts time.Time, score float64) types.EngineResult {
	return types.EngineResult{Timestamp: ts, GlobalScore: score}
}

func TestParseInterval(t *testing.T) {
	iv, err := ParseInterval("week")
	require.NoError(t, err)
	assert.Equal(t, IntervalWeek, iv)

	iv, err = ParseInterval("")
	require.NoError(t, err)
	assert.Equal(t, IntervalDay, iv)

	_, err = ParseInterval("fortnight")
	assert.Error(t, err)
}

func TestResample_DailyBuckets(t *testing.T) {
	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)

	points := Resample([]types.EngineResult{
		scored(day1, 40),
		scored(day1.Add(2*time.Hour), 60),
		scored(day2, 80),
	}, IntervalDay)

	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	assert.InDelta(t, 50.0, points[0].MeanScore, 0.0001)
	assert.Equal(t, 2, points[0].Count)
	assert.InDelta(t, 80.0, points[1].MeanScore, 0.0001)
}

func TestResample_WeekStartsMonday(t *testing.T) {
	// 2024-03-06 is a Wednesday; its ISO week starts Monday 2024-03-04.
	wednesday := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC)

	points := Resample([]types.EngineResult{
		scored(wednesday, 50),
		scored(sunday, 70),
		scored(nextMonday, 90),
	}, IntervalWeek)

	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	assert.Equal(t, 2, points[0].Count)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), points[1].BucketStart)
}

func TestResample_MonthlyBuckets(t *testing.T) {
	points := Resample([]types.EngineResult{
		scored(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 30),
		scored(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 60),
		scored(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 90),
	}, IntervalMonth)

	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	assert.InDelta(t, 75.0, points[1].MeanScore, 0.0001)
}

func TestResample_Empty(t *testing.T) {
	assert.Empty(t, Resample(nil, IntervalDay))
}
