// Package compatibility selects the cartons that can serve a dieline.
package compatibility

import (
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
)

// Resolver filters a carton catalog against dieline dimension sets.
// It is read-only and safe for concurrent use.
type Resolver struct {
	tolerance dimension.Tolerance
}

func NewResolver(tolerance dimension.Tolerance) *Resolver {
	return &Resolver{tolerance: tolerance}
}

func (r *Resolver) Tolerance() dimension.Tolerance {
	return r.tolerance
}

// WithTolerance returns a resolver using tol instead.
func (r *Resolver) WithTolerance(tol dimension.Tolerance) *Resolver {
	return &Resolver{tolerance: tol}
}

// Resolve returns the cartons with stock left that match at least one of
// the dieline's dimension sets, in input order.
func (r *Resolver) Resolve(d *dieline.Dieline, cartons []*carton.Carton) []*carton.Carton {
	if d == nil {
		return []*carton.Carton{}
	}
	return r.filter(d.Dimensions(), cartons)
}

// ResolveMany ORs across every dimension set of every dieline.
func (r *Resolver) ResolveMany(dielines []*dieline.Dieline, cartons []*carton.Carton) []*carton.Carton {
	var targets []dimension.Dimension
	for _, d := range dielines {
		if d != nil {
			targets = append(targets, d.Dimensions()...)
		}
	}
	return r.filter(targets, cartons)
}

// CompatibleWithAny ignores stock and checks geometry only.
func (r *Resolver) CompatibleWithAny(c *carton.Carton, targets []dimension.Dimension) bool {
	return dimension.MatchesAny(c.Box(), targets, r.tolerance)
}

func (r *Resolver) filter(targets []dimension.Dimension, cartons []*carton.Carton) []*carton.Carton {
	result := make([]*carton.Carton, 0)
	if len(targets) == 0 {
		return result
	}

	seen := make(map[string]struct{}, len(cartons))
	for _, c := range cartons {
		if c == nil || !c.IsAvailable() {
			continue
		}
		if _, dup := seen[c.SID()]; dup {
			continue
		}
		if r.CompatibleWithAny(c, targets) {
			seen[c.SID()] = struct{}{}
			result = append(result, c)
		}
	}
	return result
}
