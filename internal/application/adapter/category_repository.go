// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindAll retrieves all categories, optionally filtered by type.
	FindAll(ctx context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// ExistsByName checks if a category with the given name exists, ignoring excludeID.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id int64) error
}
