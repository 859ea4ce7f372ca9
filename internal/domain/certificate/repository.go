package certificate

import (
	"context"
)

// Repository defines the persistence boundary for certificates
type Repository interface {
	// Create persists a newly issued certificate
	Create(ctx context.Context, cert *Certificate) error

	// FindByID looks a certificate up by its opaque id
	FindByID(ctx context.Context, id string) (*Certificate, error)

	// FindByNumber looks a certificate up by its human-facing number
	FindByNumber(ctx context.Context, certificateID string) (*Certificate, error)

	// List returns a page of certificates, newest first
	List(ctx context.Context, limit, offset int) ([]*Certificate, error)

	// ListAll returns the full collection, newest first
	ListAll(ctx context.Context) ([]*Certificate, error)

	// Count returns how many certificates exist
	Count(ctx context.Context) (int, error)

	// Update persists changes to an existing certificate
	Update(ctx context.Context, cert *Certificate) error

	// Delete permanently removes a certificate
	Delete(ctx context.Context, id string) error
}
