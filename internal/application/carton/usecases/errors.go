package usecases

import (
	stderrors "errors"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/errors"
)

func translateDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, carton.ErrInvalidQuantity):
		return errors.NewInvalidQuantityError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}
