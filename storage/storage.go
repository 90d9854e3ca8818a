package storage

import (
	"context"
	"errors"

	"github.com/ayushfaujdar/oodio-solutions/models"
)

var (
	// ErrNotFound is returned when an identifier does not match any record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
)

// Storage is the single persistence capability of the application. One
// implementation is selected at startup; identifiers are passed as opaque
// strings so callers never assume numeric semantics.
//
// List operations return an empty slice, never an error, when nothing
// matches. Portfolio items and contact submissions list newest-first;
// categories list in ascending creation order.
type Storage interface {
	GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	GetPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error
	UpdatePortfolioItem(ctx context.Context, id string, updates models.PortfolioItemUpdate) (*models.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id string) error

	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	CreateContactSubmission(ctx context.Context, submission *models.ContactSubmission) error
	GetContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
}
