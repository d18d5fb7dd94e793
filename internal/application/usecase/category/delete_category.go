// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(uow adapter.UnitOfWork) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		uow: uow,
	}
}

// Execute deletes the category unless a transaction still references it.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id int64) error {
	err := uc.uow.Do(ctx, func(tx adapter.LedgerTx) error {
		if _, err := tx.Categories().FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return notFoundError()
			}
			return fmt.Errorf("failed to find category: %w", err)
		}

		inUse, err := tx.Transactions().ExistsByCategory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check category usage: %w", err)
		}
		if inUse {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category is referenced by transactions",
				domainerror.ErrCategoryInUse,
			)
		}

		if err := tx.Categories().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Category deleted", "categoryID", id)
	return nil
}
