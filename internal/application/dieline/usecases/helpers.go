package usecases

import (
	"fmt"

	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

func toDimensions(inputs []DimensionInput) ([]dimension.Dimension, error) {
	dims := make([]dimension.Dimension, 0, len(inputs))
	for i, in := range inputs {
		d, err := dimension.NewDimensionFromFloat(in.Length, in.Breadth, in.Height, in.UPS)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("dimension set %d: %s", i, err.Error()))
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// renderNotes never fails the request; broken markdown falls back to no HTML.
func renderNotes(r NotesRenderer, log logger.Interface, sid, notes string) string {
	if r == nil || notes == "" {
		return ""
	}
	html, err := r.Render(notes)
	if err != nil {
		log.Warnw("failed to render dieline notes", "dieline_sid", sid, "error", err)
		return ""
	}
	return html
}
