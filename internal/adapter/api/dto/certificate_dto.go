package dto

import (
	"time"

	"github.com/driversed/driversed-api/internal/domain/certificate"
)

// CertificateRequest carries the fields for issuing a certificate. Marks is
// sent as text by the admin form and validated by the domain.
type CertificateRequest struct {
	Name            string     `json:"name" binding:"required"`
	Surname         string     `json:"surname" binding:"required"`
	City            string     `json:"city" binding:"required"`
	Marks           string     `json:"marks" binding:"required"`
	Instructor      string     `json:"instructor"`
	CertificateType string     `json:"certificate_type"`
	ExpiryDate      *time.Time `json:"expiry_date"`
}

// CertificateUpdateRequest carries a partial update; absent fields are left
// unchanged. The id and certificate number cannot be updated.
type CertificateUpdateRequest struct {
	Name            *string    `json:"name"`
	Surname         *string    `json:"surname"`
	City            *string    `json:"city"`
	Marks           *string    `json:"marks"`
	Instructor      *string    `json:"instructor"`
	CertificateType *string    `json:"certificate_type"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	IsValid         *bool      `json:"is_valid"`
}

// ToInput converts the update request into the domain's update input
func (r *CertificateUpdateRequest) ToInput() certificate.UpdateInput {
	return certificate.UpdateInput{
		Name:            r.Name,
		Surname:         r.Surname,
		City:            r.City,
		Marks:           r.Marks,
		Instructor:      r.Instructor,
		CertificateType: r.CertificateType,
		ExpiryDate:      r.ExpiryDate,
		IsValid:         r.IsValid,
	}
}

// CertificateResponse is the representation of a certificate returned by
// the API, with the validity state derived at response time.
type CertificateResponse struct {
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
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CertificateListResponse is the paginated list representation
type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// NewCertificateResponse builds a CertificateResponse from a certificate
func NewCertificateResponse(cert *certificate.Certificate, now time.Time) *CertificateResponse {
	return &CertificateResponse{
		ID:              cert.ID,
		CertificateID:   cert.CertificateID,
		Name:            cert.Name,
		Surname:         cert.Surname,
		CertificateType: cert.CertificateType,
		Result:          cert.Result,
		Date:            cert.Date,
		ExpiryDate:      cert.ExpiryDate,
		City:            cert.City,
		Instructor:      cert.Instructor,
		IsValid:         cert.IsValid,
		Status:          string(cert.StatusAt(now)),
		CreatedAt:       cert.CreatedAt,
		UpdatedAt:       cert.UpdatedAt,
	}
}

// NewCertificateListResponse builds the paginated list representation
func NewCertificateListResponse(certificates []*certificate.Certificate, total, page, pageSize int, now time.Time) *CertificateListResponse {
	response := &CertificateListResponse{
		Certificates: make([]CertificateResponse, 0, len(certificates)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}

	for _, cert := range certificates {
		response.Certificates = append(response.Certificates, *NewCertificateResponse(cert, now))
	}

	return response
}
