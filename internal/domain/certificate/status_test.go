package certificate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name string
		cert Certificate
		want Status
	}{
		{"valid without expiry", Certificate{IsValid: true}, StatusValid},
		{"valid with future expiry", Certificate{IsValid: true, ExpiryDate: &future}, StatusValid},
		{"expired yesterday", Certificate{IsValid: true, ExpiryDate: &past}, StatusExpired},
		{"expiry is not a deadline at the exact instant", Certificate{IsValid: true, ExpiryDate: &now}, StatusValid},
		{"revoked without expiry", Certificate{IsValid: false}, StatusInvalid},
		{"revoked beats future expiry", Certificate{IsValid: false, ExpiryDate: &future}, StatusInvalid},
		{"revoked beats past expiry", Certificate{IsValid: false, ExpiryDate: &past}, StatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateStatus(&tt.cert, now))
			assert.Equal(t, tt.want, tt.cert.StatusAt(now))
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)

	assert.False(t, (&Certificate{IsValid: true}).IsExpired(now))
	assert.True(t, (&Certificate{IsValid: true, ExpiryDate: &past}).IsExpired(now))
	// Expiry is independent of the manual invalidation flag
	assert.True(t, (&Certificate{IsValid: false, ExpiryDate: &past}).IsExpired(now))
}
