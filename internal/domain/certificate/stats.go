package certificate

import (
	"sort"
	"time"
)

// StatsOptions configures the dashboard aggregation horizons
type StatsOptions struct {
	// ExpiryWindow is how far ahead a valid certificate's expiry date may
	// fall to count as expiring soon.
	ExpiryWindow time.Duration
	// TrailingMonths is the length of the monthly histogram, current month
	// included.
	TrailingMonths int
	// RecentCount is how many of the most recently created certificates to
	// return for display.
	RecentCount int
}

// MonthlyCount is one bucket of the monthly issuance histogram
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Stats holds the dashboard summary figures derived from the full
// certificate collection.
type Stats struct {
	TotalCertificates    int            `json:"total_certificates"`
	ValidCertificates    int            `json:"valid_certificates"`
	AverageScore         float64        `json:"average_score"`
	ExpiringCertificates int            `json:"expiring_certificates"`
	MonthlyStats         []MonthlyCount `json:"monthly_stats"`
	RecentCertificates   []*Certificate `json:"recent_certificates"`
}

// BuildStats derives the dashboard figures from the certificate collection.
// Pure function: it never mutates its input and holds no state. The average
// is 0 for an empty collection, and months without issuances still appear
// in the histogram with a count of 0.
func BuildStats(certs []*Certificate, now time.Time, opts StatsOptions) Stats {
	stats := Stats{
		TotalCertificates: len(certs),
		MonthlyStats:      make([]MonthlyCount, 0, opts.TrailingMonths),
	}

	windowEnd := now.Add(opts.ExpiryWindow)
	monthCounts := make(map[string]int)

	var scoreSum float64
	for _, c := range certs {
		scoreSum += c.Result

		if EvaluateStatus(c, now) == StatusValid {
			stats.ValidCertificates++
			if c.ExpiryDate != nil && !c.ExpiryDate.Before(now) && !c.ExpiryDate.After(windowEnd) {
				stats.ExpiringCertificates++
			}
		}

		monthCounts[monthKey(c.Date)]++
	}

	if len(certs) > 0 {
		stats.AverageScore = scoreSum / float64(len(certs))
	}

	// Trailing histogram, oldest month first, zero-filled
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(opts.TrailingMonths - 1), 0)
	for i := 0; i < opts.TrailingMonths; i++ {
		month := first.AddDate(0, i, 0)
		stats.MonthlyStats = append(stats.MonthlyStats, MonthlyCount{
			Month: month.Format("Jan 2006"),
			Count: monthCounts[monthKey(month)],
		})
	}

	stats.RecentCertificates = mostRecent(certs, opts.RecentCount)

	return stats
}

// mostRecent returns up to n certificates ordered by creation time, newest
// first. The input slice is left untouched.
func mostRecent(certs []*Certificate, n int) []*Certificate {
	recent := make([]*Certificate, len(certs))
	copy(recent, certs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
