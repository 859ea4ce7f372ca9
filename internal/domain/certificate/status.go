package certificate

import "time"

// Status is the derived validity classification of a certificate at a given
// instant. It is computed on read and never stored.
type Status string

const (
	StatusValid   Status = "valid"
	StatusExpired Status = "expired"
	StatusInvalid Status = "invalid"
)

// EvaluateStatus classifies a certificate. A manual invalidation always wins:
// a revoked certificate is never reported valid or expired. Otherwise a set
// expiry date in the past means expired, and everything else is valid.
// Pure function of its inputs.
func EvaluateStatus(c *Certificate, now time.Time) Status {
	if !c.IsValid {
		return StatusInvalid
	}
	if c.ExpiryDate != nil && now.After(*c.ExpiryDate) {
		return StatusExpired
	}
	return StatusValid
}

// StatusAt returns the certificate's validity state at the given instant
func (c *Certificate) StatusAt(now time.Time) Status {
	return EvaluateStatus(c, now)
}

// IsExpired reports whether the certificate has passed its expiry date.
// Certificates without an expiry date never expire.
func (c *Certificate) IsExpired(now time.Time) bool {
	return c.ExpiryDate != nil && now.After(*c.ExpiryDate)
}
