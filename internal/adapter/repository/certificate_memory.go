package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/driversed/driversed-api/internal/domain/certificate"
)

// InMemoryCertificateRepository keeps certificates in a map guarded by a
// mutex. It backs tests and local development without a database; the
// semantics match the Postgres implementation.
type InMemoryCertificateRepository struct {
	mu    sync.RWMutex
	certs map[string]certificate.Certificate
}

// NewInMemoryCertificateRepository creates an empty in-memory repository
func NewInMemoryCertificateRepository() *InMemoryCertificateRepository {
	return &InMemoryCertificateRepository{
		certs: make(map[string]certificate.Certificate),
	}
}

// Create stores a newly issued certificate
func (r *InMemoryCertificateRepository) Create(ctx context.Context, cert *certificate.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.certs[cert.ID] = *cert
	return nil
}

// FindByID fetches a certificate by its opaque id
func (r *InMemoryCertificateRepository) FindByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cert, ok := r.certs[id]
	if !ok {
		return nil, certificate.ErrNotFound
	}
	return &cert, nil
}

// FindByNumber fetches a certificate by its human-facing number
func (r *InMemoryCertificateRepository) FindByNumber(ctx context.Context, certificateID string) (*certificate.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cert := range r.certs {
		if cert.CertificateID == certificateID {
			c := cert
			return &c, nil
		}
	}
	return nil, certificate.ErrNotFound
}

// List returns a page of certificates, newest first
func (r *InMemoryCertificateRepository) List(ctx context.Context, limit, offset int) ([]*certificate.Certificate, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if offset >= len(all) {
		return []*certificate.Certificate{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// ListAll returns the full collection, newest first
func (r *InMemoryCertificateRepository) ListAll(ctx context.Context) ([]*certificate.Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*certificate.Certificate, 0, len(r.certs))
	for _, cert := range r.certs {
		c := cert
		all = append(all, &c)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// Count returns how many certificates exist
func (r *InMemoryCertificateRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.certs), nil
}

// Update persists changes to an existing certificate
func (r *InMemoryCertificateRepository) Update(ctx context.Context, cert *certificate.Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.certs[cert.ID]; !ok {
		return certificate.ErrNotFound
	}
	r.certs[cert.ID] = *cert
	return nil
}

// Delete permanently removes a certificate
func (r *InMemoryCertificateRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.certs[id]; !ok {
		return certificate.ErrNotFound
	}
	delete(r.certs, id)
	return nil
}
