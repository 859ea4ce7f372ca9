package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/driversed/driversed-api/internal/domain/certificate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const certificateColumns = `
	id, certificate_id, name, surname, certificate_type, result,
	date, expiry_date, city, instructor, is_valid, created_at, updated_at`

// CertificateRepository is the Postgres implementation of
// certificate.Repository.
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(db *pgxpool.Pool) certificate.Repository {
	return &CertificateRepository{
		db: db,
	}
}

// Create inserts a newly issued certificate
func (r *CertificateRepository) Create(ctx context.Context, cert *certificate.Certificate) error {
	query := `
		INSERT INTO certificates (
			id, certificate_id, name, surname, certificate_type, result,
			date, expiry_date, city, instructor, is_valid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		cert.ID, cert.CertificateID, cert.Name, cert.Surname, cert.CertificateType,
		cert.Result, cert.Date, cert.ExpiryDate, cert.City, cert.Instructor,
		cert.IsValid, cert.CreatedAt, cert.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert certificate: %w", err)
	}

	return nil
}

// FindByID fetches a certificate by its opaque id
func (r *CertificateRepository) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates WHERE id = $1`, certificateColumns)
	return r.queryOne(ctx, query, id)
}

// FindByNumber fetches a certificate by its human-facing number
func (r *CertificateRepository) FindByNumber(ctx context.Context, certificateID string) (*certificate.Certificate, error) {
	query := fmt.Sprintf(`SELECT %s FROM certificates WHERE certificate_id = $1`, certificateColumns)
	return r.queryOne(ctx, query, certificateID)
}

// List returns a page of certificates, newest first
func (r *CertificateRepository) List(ctx context.Context, limit, offset int) ([]*certificate.Certificate, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s FROM certificates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, certificateColumns)

	return r.queryMany(ctx, query, limit, offset)
}

// ListAll returns the full certificate collection, newest first
func (r *CertificateRepository) ListAll(ctx context.Context) ([]*certificate.Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM certificates
		ORDER BY created_at DESC`, certificateColumns)

	return r.queryMany(ctx, query)
}

// Count returns how many certificates exist
func (r *CertificateRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM certificates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return count, nil
}

// Update persists changes to an existing certificate. The id and
// certificate number are never part of the update.
func (r *CertificateRepository) Update(ctx context.Context, cert *certificate.Certificate) error {
	query := `
		UPDATE certificates SET
			name = $1, surname = $2, certificate_type = $3, result = $4,
			expiry_date = $5, city = $6, instructor = $7, is_valid = $8,
			updated_at = $9
		WHERE id = $10`

	tag, err := r.db.Exec(ctx, query,
		cert.Name, cert.Surname, cert.CertificateType, cert.Result,
		cert.ExpiryDate, cert.City, cert.Instructor, cert.IsValid,
		cert.UpdatedAt, cert.ID)

	if err != nil {
		return fmt.Errorf("failed to update certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrNotFound
	}

	return nil
}

// Delete permanently removes a certificate
func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return certificate.ErrNotFound
	}

	return nil
}

func (r *CertificateRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*certificate.Certificate, error) {
	var cert certificate.Certificate
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&cert.ID, &cert.CertificateID, &cert.Name, &cert.Surname,
		&cert.CertificateType, &cert.Result, &cert.Date, &cert.ExpiryDate,
		&cert.City, &cert.Instructor, &cert.IsValid, &cert.CreatedAt, &cert.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certificate.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch certificate: %w", err)
	}

	return &cert, nil
}

func (r *CertificateRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*certificate.Certificate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certificates: %w", err)
	}
	defer rows.Close()

	certificates := []*certificate.Certificate{}
	for rows.Next() {
		var cert certificate.Certificate
		err = rows.Scan(
			&cert.ID, &cert.CertificateID, &cert.Name, &cert.Surname,
			&cert.CertificateType, &cert.Result, &cert.Date, &cert.ExpiryDate,
			&cert.City, &cert.Instructor, &cert.IsValid, &cert.CreatedAt, &cert.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, &cert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}

	return certificates, nil
}
