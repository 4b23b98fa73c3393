package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/infrastructure/spreadsheet"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

type ImportCartonsCommand struct {
	File      io.Reader
	CreatedBy uint
}

type ImportCartonsResult struct {
	Imported int `json:"imported"`
	// Legacy counts rows that only had a single Quantity column.
	Legacy int `json:"legacy"`
}

// ImportCartonsUseCase loads cartons from an .xlsx workbook. The file is
// imported as a whole or not at all.
type ImportCartonsUseCase struct {
	cartonRepo carton.Repository
	txMgr      TransactionManager
	logger     logger.Interface
}

func NewImportCartonsUseCase(cartonRepo carton.Repository, txMgr TransactionManager, logger logger.Interface) *ImportCartonsUseCase {
	return &ImportCartonsUseCase{cartonRepo: cartonRepo, txMgr: txMgr, logger: logger}
}

func (uc *ImportCartonsUseCase) Execute(ctx context.Context, cmd ImportCartonsCommand) (*ImportCartonsResult, error) {
	uc.logger.Infow("executing import cartons use case", "created_by", cmd.CreatedBy)

	rows, rowErrs, err := spreadsheet.ParseCartons(cmd.File)
	if err != nil {
		if stderrors.Is(err, spreadsheet.ErrMissingColumns) {
			return nil, errors.NewValidationError(err.Error())
		}
		return nil, errors.NewBadRequestError("could not read spreadsheet", err.Error())
	}

	result := &ImportCartonsResult{}
	cartons := make([]*carton.Carton, 0, len(rows))
	for _, row := range rows {
		c, err := cartonFromRow(row, cmd.CreatedBy)
		if err != nil {
			rowErrs = append(rowErrs, spreadsheet.RowError{Row: row.Row, Message: err.Error()})
			continue
		}
		if row.Legacy {
			result.Legacy++
		}
		cartons = append(cartons, c)
	}

	if len(rowErrs) > 0 {
		details := make([]string, 0, len(rowErrs))
		for _, re := range rowErrs {
			details = append(details, re.Error())
		}
		uc.logger.Warnw("carton import rejected", "invalid_rows", len(rowErrs))
		return nil, errors.NewValidationError(
			fmt.Sprintf("spreadsheet has %d invalid rows", len(rowErrs)), details...,
		).WithMeta(rowErrs)
	}
	if len(cartons) == 0 {
		return nil, errors.NewValidationError("spreadsheet contains no cartons")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.cartonRepo.CreateBatch(txCtx, cartons)
	})
	if err != nil {
		uc.logger.Errorw("failed to import cartons", "count", len(cartons), "error", err)
		return nil, err
	}

	result.Imported = len(cartons)
	uc.logger.Infow("cartons imported successfully", "imported", result.Imported, "legacy", result.Legacy)
	return result, nil
}

func cartonFromRow(row spreadsheet.CartonRow, createdBy uint) (*carton.Carton, error) {
	box, err := dimension.NewBox(row.Length, row.Breadth, row.Height)
	if err != nil {
		return nil, err
	}
	stock, err := carton.RestoreStock(row.TotalQuantity, row.AvailableQuantity)
	if err != nil {
		return nil, err
	}
	return carton.NewCartonWithStock(utils.SanitizeName(row.Name), utils.SanitizeName(row.CompanyName), box, stock, createdBy)
}
