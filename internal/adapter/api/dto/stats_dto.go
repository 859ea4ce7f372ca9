package dto

import (
	"time"

	"github.com/driversed/driversed-api/internal/domain/certificate"
)

// DashboardStatsResponse is the dashboard summary returned by the API
type DashboardStatsResponse struct {
	TotalCertificates    int                        `json:"total_certificates"`
	ValidCertificates    int                        `json:"valid_certificates"`
	AverageScore         float64                    `json:"average_score"`
	ExpiringCertificates int                        `json:"expiring_certificates"`
	MonthlyStats         []certificate.MonthlyCount `json:"monthly_stats"`
	RecentCertificates   []CertificateResponse      `json:"recent_certificates"`
}

// NewDashboardStatsResponse builds the dashboard response from the derived
// stats.
func NewDashboardStatsResponse(stats certificate.Stats, now time.Time) *DashboardStatsResponse {
	recent := make([]CertificateResponse, 0, len(stats.RecentCertificates))
	for _, cert := range stats.RecentCertificates {
		recent = append(recent, *NewCertificateResponse(cert, now))
	}

	return &DashboardStatsResponse{
		TotalCertificates:    stats.TotalCertificates,
		ValidCertificates:    stats.ValidCertificates,
		AverageScore:         stats.AverageScore,
		ExpiringCertificates: stats.ExpiringCertificates,
		MonthlyStats:         stats.MonthlyStats,
		RecentCertificates:   recent,
	}
}
