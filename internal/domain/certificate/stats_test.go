package certificate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStatsOptions = StatsOptions{
	ExpiryWindow:   30 * 24 * time.Hour,
	TrailingMonths: 12,
	RecentCount:    5,
}

func statsCert(created time.Time, result float64, valid bool, expiry *time.Time) *Certificate {
	return &Certificate{
		ID:         created.Format(time.RFC3339Nano),
		Result:     result,
		Date:       created,
		ExpiryDate: expiry,
		IsValid:    valid,
		CreatedAt:  created,
	}
}

func TestBuildStatsEmptyCollection(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	stats := BuildStats(nil, now, testStatsOptions)

	assert.Equal(t, 0, stats.TotalCertificates)
	assert.Equal(t, 0, stats.ValidCertificates)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0, stats.ExpiringCertificates)
	assert.Empty(t, stats.RecentCertificates)

	// The histogram still covers the full trailing range
	require.Len(t, stats.MonthlyStats, 12)
	for _, m := range stats.MonthlyStats {
		assert.Equal(t, 0, m.Count)
	}
	assert.Equal(t, "Sep 2025", stats.MonthlyStats[0].Month)
	assert.Equal(t, "Aug 2026", stats.MonthlyStats[11].Month)
}

func TestBuildStatsCountsAndAverage(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	soon := now.AddDate(0, 0, 10)
	far := now.AddDate(0, 6, 0)

	certs := []*Certificate{
		statsCert(now.AddDate(0, 0, -1), 90, true, nil),    // valid, no expiry
		statsCert(now.AddDate(0, 0, -2), 80, true, &soon),  // valid, expiring soon
		statsCert(now.AddDate(0, 0, -3), 70, true, &far),   // valid, expiring later
		statsCert(now.AddDate(0, 0, -4), 60, true, &past),  // expired
		statsCert(now.AddDate(0, 0, -5), 50, false, &soon), // revoked, expiry ignored
	}

	stats := BuildStats(certs, now, testStatsOptions)

	assert.Equal(t, 5, stats.TotalCertificates)
	assert.Equal(t, 3, stats.ValidCertificates)
	assert.Equal(t, 1, stats.ExpiringCertificates)
	assert.InDelta(t, 70.0, stats.AverageScore, 1e-9)

	// Internal consistency
	assert.LessOrEqual(t, stats.ValidCertificates, stats.TotalCertificates)
	assert.LessOrEqual(t, stats.ExpiringCertificates, stats.ValidCertificates)
}

func TestBuildStatsExpiryWindowBounds(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	atWindowEnd := now.Add(testStatsOptions.ExpiryWindow)
	justPastWindow := atWindowEnd.Add(time.Second)

	certs := []*Certificate{
		statsCert(now, 90, true, &atWindowEnd),
		statsCert(now, 90, true, &justPastWindow),
	}

	stats := BuildStats(certs, now, testStatsOptions)
	assert.Equal(t, 1, stats.ExpiringCertificates)
}

func TestBuildStatsMonthlyHistogram(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	certs := []*Certificate{
		statsCert(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), 90, true, nil),
		statsCert(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), 90, true, nil),
		statsCert(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), 90, true, nil),
		// Outside the trailing range, must not appear
		statsCert(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 90, true, nil),
	}

	stats := BuildStats(certs, now, testStatsOptions)

	require.Len(t, stats.MonthlyStats, 12)
	byMonth := make(map[string]int)
	for _, m := range stats.MonthlyStats {
		byMonth[m.Month] = m.Count
	}
	assert.Equal(t, 2, byMonth["Aug 2026"])
	assert.Equal(t, 1, byMonth["Feb 2026"])
	assert.Equal(t, 0, byMonth["Jan 2026"])

	total := 0
	for _, m := range stats.MonthlyStats {
		total += m.Count
	}
	assert.Equal(t, 3, total)
}

func TestBuildStatsRecentCertificates(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	var certs []*Certificate
	for i := 0; i < 8; i++ {
		certs = append(certs, statsCert(now.AddDate(0, 0, -i), float64(i), true, nil))
	}

	stats := BuildStats(certs, now, testStatsOptions)

	require.Len(t, stats.RecentCertificates, 5)
	for i := 1; i < len(stats.RecentCertificates); i++ {
		prev := stats.RecentCertificates[i-1].CreatedAt
		cur := stats.RecentCertificates[i].CreatedAt
		assert.True(t, prev.After(cur) || prev.Equal(cur), "recent certificates must be newest first")
	}

	// The input slice order is untouched
	assert.Equal(t, now, certs[0].CreatedAt)
}
