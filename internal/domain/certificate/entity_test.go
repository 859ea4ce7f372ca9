package certificate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = Defaults{
	Instructor:      "Rihaad",
	NumberPrefix:    "DRA",
	CertificateType: "Driver Risk Assessment",
}

func TestNewCertificate(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("applies defaults and system fields", func(t *testing.T) {
		cert, err := NewCertificate(CreateInput{
			Name:    "Miles",
			Surname: "White",
			City:    "Cape Town",
			Marks:   "94",
		}, testDefaults, now)
		require.NoError(t, err)

		assert.NotEmpty(t, cert.ID)
		assert.Equal(t, "Rihaad", cert.Instructor)
		assert.Equal(t, "Driver Risk Assessment", cert.CertificateType)
		assert.Equal(t, 94.0, cert.Result)
		assert.True(t, cert.IsValid)
		assert.Nil(t, cert.ExpiryDate)
		assert.Equal(t, now, cert.Date)
		assert.Equal(t, now, cert.CreatedAt)
		assert.Equal(t, now, cert.UpdatedAt)
	})

	t.Run("generates the certificate number", func(t *testing.T) {
		cert, err := NewCertificate(CreateInput{
			Name:    "Miles",
			Surname: "White",
			City:    "Cape Town",
			Marks:   "94",
		}, testDefaults, now)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(cert.CertificateID, "DRA-2026-"))
		assert.Len(t, cert.CertificateID, len("DRA-2026-")+6)
	})

	t.Run("trims text fields", func(t *testing.T) {
		cert, err := NewCertificate(CreateInput{
			Name:       "  Miles ",
			Surname:    " White ",
			City:       " Cape Town ",
			Marks:      " 94 ",
			Instructor: "  Sandra  ",
		}, testDefaults, now)
		require.NoError(t, err)

		assert.Equal(t, "Miles", cert.Name)
		assert.Equal(t, "White", cert.Surname)
		assert.Equal(t, "Cape Town", cert.City)
		assert.Equal(t, "Sandra", cert.Instructor)
		assert.Equal(t, "Miles White", cert.HolderName())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateInput
			field string
		}{
			{"empty name", CreateInput{Name: "", Surname: "White", City: "Cape Town", Marks: "94"}, "name"},
			{"whitespace name", CreateInput{Name: "   ", Surname: "White", City: "Cape Town", Marks: "94"}, "name"},
			{"empty surname", CreateInput{Name: "Miles", Surname: "", City: "Cape Town", Marks: "94"}, "surname"},
			{"empty city", CreateInput{Name: "Miles", Surname: "White", City: "", Marks: "94"}, "city"},
			{"missing marks", CreateInput{Name: "Miles", Surname: "White", City: "Cape Town", Marks: ""}, "marks"},
			{"marks not a number", CreateInput{Name: "Miles", Surname: "White", City: "Cape Town", Marks: "ninety"}, "marks"},
			{"marks above range", CreateInput{Name: "Miles", Surname: "White", City: "Cape Town", Marks: "150"}, "marks"},
			{"marks below range", CreateInput{Name: "Miles", Surname: "White", City: "Cape Town", Marks: "-1"}, "marks"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewCertificate(tt.input, testDefaults, now)
				require.Error(t, err)
				require.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.field)
			})
		}
	})

	t.Run("accepts boundary marks", func(t *testing.T) {
		for _, marks := range []string{"0", "100", "87.5"} {
			_, err := NewCertificate(CreateInput{
				Name: "Miles", Surname: "White", City: "Cape Town", Marks: marks,
			}, testDefaults, now)
			assert.NoError(t, err, "marks %s", marks)
		}
	})
}

func TestApplyUpdate(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	newCert := func(t *testing.T) *Certificate {
		cert, err := NewCertificate(CreateInput{
			Name: "Miles", Surname: "White", City: "Cape Town", Marks: "94",
		}, testDefaults, now)
		require.NoError(t, err)
		return cert
	}

	t.Run("updates only the given fields", func(t *testing.T) {
		cert := newCert(t)
		city := "Durban"
		marks := "81"

		err := cert.ApplyUpdate(UpdateInput{City: &city, Marks: &marks}, later)
		require.NoError(t, err)

		assert.Equal(t, "Durban", cert.City)
		assert.Equal(t, 81.0, cert.Result)
		assert.Equal(t, "Miles", cert.Name)
		assert.Equal(t, later, cert.UpdatedAt)
		assert.Equal(t, now, cert.CreatedAt)
	})

	t.Run("validates present fields like creation", func(t *testing.T) {
		cert := newCert(t)
		empty := "  "
		marks := "120"

		err := cert.ApplyUpdate(UpdateInput{Name: &empty}, later)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		err = cert.ApplyUpdate(UpdateInput{Marks: &marks}, later)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("never changes id or certificate number", func(t *testing.T) {
		cert := newCert(t)
		id := cert.ID
		number := cert.CertificateID
		name := "Sipho"
		valid := false

		err := cert.ApplyUpdate(UpdateInput{Name: &name, IsValid: &valid}, later)
		require.NoError(t, err)

		assert.Equal(t, id, cert.ID)
		assert.Equal(t, number, cert.CertificateID)
		assert.False(t, cert.IsValid)
	})

	t.Run("failed validation leaves timestamps alone", func(t *testing.T) {
		cert := newCert(t)
		bad := ""

		err := cert.ApplyUpdate(UpdateInput{City: &bad}, later)
		require.Error(t, err)
		assert.Equal(t, now, cert.UpdatedAt)
	})
}

func TestRevokeReinstate(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	cert, err := NewCertificate(CreateInput{
		Name: "Miles", Surname: "White", City: "Cape Town", Marks: "94",
	}, testDefaults, now)
	require.NoError(t, err)

	cert.Revoke(now.Add(time.Minute))
	assert.False(t, cert.IsValid)
	assert.Equal(t, now.Add(time.Minute), cert.UpdatedAt)

	cert.Reinstate(now.Add(2 * time.Minute))
	assert.True(t, cert.IsValid)
	assert.Equal(t, now.Add(2*time.Minute), cert.UpdatedAt)
}
