package usecases

import (
	"fmt"
	"strings"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/id"
)

// DimensionSetInput picks one dimension set of a dieline. Geometry is
// always read from the dieline; only the sheet count comes from the client.
type DimensionSetInput struct {
	DielineSID     string
	DimensionIndex int
	Sheets         int
}

type CartonUsageInput struct {
	CartonSID    string
	QuantityUsed int
}

// selection is a syntactically valid request: ids are well formed,
// unselected sets are dropped and every carton has exactly one quantity.
type selection struct {
	dielineSIDs []string
	sets        []DimensionSetInput
	cartonSIDs  []string
	quantities  map[string]int
}

func invalidSelection(format string, args ...interface{}) error {
	return errors.NewInvalidSelectionError(fmt.Sprintf(format, args...))
}

func parseSelection(cmd CreateAssignmentCommand) (*selection, error) {
	sel := &selection{quantities: make(map[string]int)}

	totalSheets := 0
	for i, s := range cmd.DimensionSets {
		s.DielineSID = strings.TrimSpace(s.DielineSID)
		if s.Sheets < 0 {
			return nil, invalidSelection("dimension set %d: sheets must not be negative", i)
		}
		if s.Sheets == 0 {
			continue
		}
		if s.Sheets > assignment.MaxSheets || totalSheets > assignment.MaxTotalSheets-s.Sheets {
			return nil, invalidSelection("dimension set %d: %s", i, assignment.ErrTooManySheets.Error())
		}
		totalSheets += s.Sheets
		if err := id.ValidatePrefix(s.DielineSID, id.PrefixDieline); err != nil {
			return nil, invalidSelection("dimension set %d: malformed dieline id %q", i, s.DielineSID)
		}
		if s.DimensionIndex < 0 {
			return nil, invalidSelection("dimension set %d: dimension index must not be negative", i)
		}
		sel.sets = append(sel.sets, s)
	}
	if len(sel.sets) == 0 {
		return nil, errors.NewInvalidSelectionError(assignment.ErrNoDimensionSets.Error())
	}

	for _, u := range cmd.CartonUsage {
		sid := strings.TrimSpace(u.CartonSID)
		if err := id.ValidatePrefix(sid, id.PrefixCarton); err != nil {
			return nil, invalidSelection("malformed carton id %q", u.CartonSID)
		}
		if _, dup := sel.quantities[sid]; dup {
			return nil, invalidSelection("carton %s selected more than once", sid)
		}
		if u.QuantityUsed < 1 {
			return nil, invalidSelection("carton %s: quantity used must be at least 1", sid)
		}
		sel.quantities[sid] = u.QuantityUsed
		sel.cartonSIDs = append(sel.cartonSIDs, sid)
	}
	for _, sid := range cmd.CartonSIDs {
		sid = strings.TrimSpace(sid)
		if err := id.ValidatePrefix(sid, id.PrefixCarton); err != nil {
			return nil, invalidSelection("malformed carton id %q", sid)
		}
		if _, ok := sel.quantities[sid]; !ok {
			return nil, invalidSelection("carton %s selected without a quantity", sid)
		}
	}
	if len(sel.cartonSIDs) == 0 {
		return nil, errors.NewInvalidSelectionError(assignment.ErrNoCartons.Error())
	}

	declared := make(map[string]struct{}, len(cmd.DielineSIDs))
	for _, sid := range cmd.DielineSIDs {
		sid = strings.TrimSpace(sid)
		if err := id.ValidatePrefix(sid, id.PrefixDieline); err != nil {
			return nil, invalidSelection("malformed dieline id %q", sid)
		}
		if _, dup := declared[sid]; dup {
			continue
		}
		declared[sid] = struct{}{}
		sel.dielineSIDs = append(sel.dielineSIDs, sid)
	}
	for i, s := range sel.sets {
		if _, ok := declared[s.DielineSID]; ok {
			continue
		}
		if len(cmd.DielineSIDs) > 0 {
			return nil, invalidSelection("dimension set %d belongs to dieline %s which is not selected", i, s.DielineSID)
		}
		declared[s.DielineSID] = struct{}{}
		sel.dielineSIDs = append(sel.dielineSIDs, s.DielineSID)
	}

	return sel, nil
}

// shortages compares requested quantities with current stock. Cartons
// missing from current are reported as ErrCartonNotFound.
func shortages(cartonSIDs []string, quantities map[string]int, current map[string]*carton.Carton) ([]carton.Shortage, error) {
	var result []carton.Shortage
	for _, sid := range cartonSIDs {
		c, ok := current[sid]
		if !ok {
			return nil, fmt.Errorf("%w: %s", carton.ErrCartonNotFound, sid)
		}
		requested := quantities[sid]
		if requested > c.AvailableQuantity() {
			result = append(result, carton.Shortage{
				CartonID:   c.ID(),
				CartonSID:  c.SID(),
				CartonName: c.Name(),
				Requested:  requested,
				Available:  c.AvailableQuantity(),
			})
		}
	}
	return result, nil
}
