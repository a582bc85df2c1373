package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/geo-radar/internal/types"
)

// Interval selects the bucket size for score trend resampling.
type Interval string

// Supported resampling intervals.
const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// ParseInterval validates a user-supplied interval string.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case IntervalDay, IntervalWeek, IntervalMonth:
		return Interval(s), nil
	case "":
		return IntervalDay, nil
	default:
		return "", fmt.Errorf("unknown interval %q (want day, week or month)", s)
	}
}

// Resample buckets query-run results by the given interval and returns the
// mean global score and row count per bucket, chronologically sorted. Weeks
// are ISO weeks starting Monday.
func Resample(records []types.EngineResult, interval Interval) []types.TrendPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)

	for _, record := range records {
		start := bucketStart(record.Timestamp, interval)
		b, ok := buckets[start]
		if !ok {
			b = &bucket{}
			buckets[start] = b
		}
		b.sum += record.GlobalScore
		b.count++
	}

	points := make([]types.TrendPoint, 0, len(buckets))
	for start, b := range buckets {
		points = append(points, types.TrendPoint{
			BucketStart: start,
			MeanScore:   b.sum / float64(b.count),
			Count:       b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].BucketStart.Before(points[j].BucketStart)
	})
	return points
}

func bucketStart(t time.Time, interval Interval) time.Time {
	t = t.UTC()
	switch interval {
	case IntervalWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		// Monday start; Go's Sunday is 0.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}
