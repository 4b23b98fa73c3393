package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
	"github.com/cartonworks/stockline/internal/shared/biztime"
	"github.com/cartonworks/stockline/internal/shared/db"
)

// StockLedgerImpl mutates carton counters with single guarded UPDATE
// statements. A guard that no longer holds affects zero rows and is reported
// as carton.ErrStockConflict.
type StockLedgerImpl struct {
	db *gorm.DB
}

func NewStockLedger(database *gorm.DB) carton.StockLedger {
	return &StockLedgerImpl{db: database}
}

func (l *StockLedgerImpl) Decrement(ctx context.Context, cartonID uint, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: decrement of %d", carton.ErrInvalidQuantity, n)
	}

	result := db.GetTxFromContext(ctx, l.db).
		Model(&models.CartonModel{}).
		Where("id = ? AND available_quantity >= ?", cartonID, n).
		Updates(map[string]interface{}{
			"available_quantity": gorm.Expr("available_quantity - ?", n),
			"updated_at":         biztime.NowUTC(),
		})
	return guardResult(result, "decrement", cartonID)
}

func (l *StockLedgerImpl) Restore(ctx context.Context, cartonID uint, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: restore of %d", carton.ErrInvalidQuantity, n)
	}

	result := db.GetTxFromContext(ctx, l.db).
		Model(&models.CartonModel{}).
		Where("id = ? AND available_quantity + ? <= total_quantity", cartonID, n).
		Updates(map[string]interface{}{
			"available_quantity": gorm.Expr("available_quantity + ?", n),
			"updated_at":         biztime.NowUTC(),
		})
	return guardResult(result, "restore", cartonID)
}

// Swap writes next only if the row still holds expected. Both counters are
// assigned literal values so column evaluation order does not matter.
func (l *StockLedgerImpl) Swap(ctx context.Context, cartonID uint, expected, next carton.Stock) error {
	result := db.GetTxFromContext(ctx, l.db).
		Model(&models.CartonModel{}).
		Where("id = ? AND total_quantity = ? AND available_quantity = ?", cartonID, expected.Total(), expected.Available()).
		Updates(map[string]interface{}{
			"total_quantity":     next.Total(),
			"available_quantity": next.Available(),
			"updated_at":         biztime.NowUTC(),
		})
	return guardResult(result, "swap", cartonID)
}

func guardResult(result *gorm.DB, op string, cartonID uint) error {
	if result.Error != nil {
		return fmt.Errorf("failed to %s stock for carton %d: %w", op, cartonID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s carton %d: %w", op, cartonID, carton.ErrStockConflict)
	}
	return nil
}
