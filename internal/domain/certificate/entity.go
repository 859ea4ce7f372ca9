package certificate

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certificate represents a driver-training certificate issued to a driver
type Certificate struct {
	ID              string     `json:"id"`
	CertificateID   string     `json:"certificate_id"`
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	CertificateType string     `json:"certificate_type"`
	Result          float64    `json:"result"`
	Date            time.Time  `json:"date"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	City            string     `json:"city"`
	Instructor      string     `json:"instructor"`
	IsValid         bool       `json:"is_valid"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Defaults carries the issuance configuration applied when a field is
// omitted on creation. Passed in explicitly so tests can vary it.
type Defaults struct {
	Instructor      string
	NumberPrefix    string
	CertificateType string
}

// CreateInput holds the raw fields accepted when issuing a certificate.
// Marks arrives as text from the form and is validated here.
type CreateInput struct {
	Name            string
	Surname         string
	City            string
	Marks           string
	Instructor      string
	CertificateType string
	ExpiryDate      *time.Time
}

// UpdateInput holds the fields of a partial update. Nil means "leave as is".
type UpdateInput struct {
	Name            *string
	Surname         *string
	City            *string
	Marks           *string
	Instructor      *string
	CertificateType *string
	ExpiryDate      *time.Time
	IsValid         *bool
}

// NewCertificate validates the input, applies defaults and issues a new
// certificate. The id and certificate number are generated here and never
// change afterwards.
func NewCertificate(input CreateInput, defaults Defaults, now time.Time) (*Certificate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "name is required"}
	}
	surname := strings.TrimSpace(input.Surname)
	if surname == "" {
		return nil, &ValidationError{Field: "surname", Reason: "surname is required"}
	}
	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, &ValidationError{Field: "city", Reason: "city is required"}
	}

	result, err := parseMarks(input.Marks)
	if err != nil {
		return nil, err
	}

	instructor := strings.TrimSpace(input.Instructor)
	if instructor == "" {
		instructor = defaults.Instructor
	}

	certType := strings.TrimSpace(input.CertificateType)
	if certType == "" {
		certType = defaults.CertificateType
	}

	return &Certificate{
		ID:              uuid.New().String(),
		CertificateID:   NewCertificateNumber(defaults.NumberPrefix, now),
		Name:            name,
		Surname:         surname,
		CertificateType: certType,
		Result:          result,
		Date:            now,
		ExpiryDate:      input.ExpiryDate,
		City:            city,
		Instructor:      instructor,
		IsValid:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ApplyUpdate applies a partial update to the certificate, running the same
// field-level validation as creation for every field present. The id and
// certificate number are immutable and are never touched.
func (c *Certificate) ApplyUpdate(input UpdateInput, now time.Time) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return &ValidationError{Field: "name", Reason: "name is required"}
		}
		c.Name = name
	}
	if input.Surname != nil {
		surname := strings.TrimSpace(*input.Surname)
		if surname == "" {
			return &ValidationError{Field: "surname", Reason: "surname is required"}
		}
		c.Surname = surname
	}
	if input.City != nil {
		city := strings.TrimSpace(*input.City)
		if city == "" {
			return &ValidationError{Field: "city", Reason: "city is required"}
		}
		c.City = city
	}
	if input.Marks != nil {
		result, err := parseMarks(*input.Marks)
		if err != nil {
			return err
		}
		c.Result = result
	}
	if input.Instructor != nil {
		instructor := strings.TrimSpace(*input.Instructor)
		if instructor == "" {
			return &ValidationError{Field: "instructor", Reason: "instructor cannot be blank"}
		}
		c.Instructor = instructor
	}
	if input.CertificateType != nil {
		certType := strings.TrimSpace(*input.CertificateType)
		if certType == "" {
			return &ValidationError{Field: "certificate_type", Reason: "certificate type cannot be blank"}
		}
		c.CertificateType = certType
	}
	if input.ExpiryDate != nil {
		c.ExpiryDate = input.ExpiryDate
	}
	if input.IsValid != nil {
		c.IsValid = *input.IsValid
	}

	c.UpdatedAt = now
	return nil
}

// Revoke marks the certificate as manually invalidated
func (c *Certificate) Revoke(now time.Time) {
	c.IsValid = false
	c.UpdatedAt = now
}

// Reinstate clears a manual invalidation
func (c *Certificate) Reinstate(now time.Time) {
	c.IsValid = true
	c.UpdatedAt = now
}

// HolderName returns the holder's full name as displayed on the certificate
func (c *Certificate) HolderName() string {
	return c.Name + " " + c.Surname
}

// NewCertificateNumber generates the human-facing certificate number in the
// form <PREFIX>-<YEAR>-<6 hex chars>, e.g. "DRA-2026-4F07A1".
func NewCertificateNumber(prefix string, now time.Time) string {
	u := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(u[:3]))
	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), suffix)
}

// parseMarks validates the raw marks value and converts it to a score.
// The score must be a number in the closed interval [0, 100].
func parseMarks(marks string) (float64, error) {
	raw := strings.TrimSpace(marks)
	if raw == "" {
		return 0, &ValidationError{Field: "marks", Reason: "marks is required"}
	}
	result, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: "marks", Reason: "marks must be a number"}
	}
	if result < 0 || result > 100 {
		return 0, &ValidationError{Field: "marks", Reason: "marks must be between 0 and 100"}
	}
	return result, nil
}
