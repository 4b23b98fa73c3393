package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Summary counts what Apply created and skipped.
type Summary struct {
	UsersCreated    int
	UsersSkipped    int
	DielinesCreated int
	CartonsCreated  int
}

type Seeder struct {
	users    user.Repository
	dielines dieline.Repository
	cartons  carton.Repository
	tx       transactor
	logger   logger.Interface
}

func NewSeeder(users user.Repository, dielines dieline.Repository, cartons carton.Repository, tx transactor, log logger.Interface) *Seeder {
	return &Seeder{
		users:    users,
		dielines: dielines,
		cartons:  cartons,
		tx:       tx,
		logger:   log,
	}
}

// Apply inserts every fixture in one transaction. Users that already exist
// (by e-mail) are reused; dielines and cartons are always created.
func (s *Seeder) Apply(ctx context.Context, f *File) (Summary, error) {
	var summary Summary

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		summary = Summary{}
		byEmail := make(map[string]*user.User, len(f.Users))

		for _, uf := range f.Users {
			existing, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(uf.Email)))
			if err != nil {
				return err
			}
			if existing != nil {
				s.logger.Debugw("user already present", "user_sid", existing.SID())
				byEmail[existing.Email()] = existing
				summary.UsersSkipped++
				continue
			}
			u, err := user.NewUser(uf.Name, uf.Email, user.Role(uf.Role))
			if err != nil {
				return fmt.Errorf("user %s: %w", uf.Email, err)
			}
			if err := s.users.Create(ctx, u); err != nil {
				return fmt.Errorf("user %s: %w", uf.Email, err)
			}
			byEmail[u.Email()] = u
			summary.UsersCreated++
		}

		creator := func(email string) (uint, error) {
			key := strings.ToLower(strings.TrimSpace(email))
			if u, ok := byEmail[key]; ok {
				return u.ID(), nil
			}
			u, err := s.users.GetByEmail(ctx, key)
			if err != nil {
				return 0, err
			}
			if u == nil {
				return 0, fmt.Errorf("unknown user %s", email)
			}
			byEmail[key] = u
			return u.ID(), nil
		}

		for _, df := range f.Dielines {
			by, err := creator(df.CreatedBy)
			if err != nil {
				return fmt.Errorf("dieline %q: %w", df.Name, err)
			}
			dims := make([]dimension.Dimension, 0, len(df.Dimensions))
			for _, d := range df.Dimensions {
				dim, err := dimension.NewDimensionFromFloat(d.Length, d.Breadth, d.Height, d.UPS)
				if err != nil {
					return fmt.Errorf("dieline %q: %w", df.Name, err)
				}
				dims = append(dims, dim)
			}
			dl, err := dieline.NewDieline(df.Name, df.Notes, dims, by)
			if err != nil {
				return fmt.Errorf("dieline %q: %w", df.Name, err)
			}
			if err := s.dielines.Create(ctx, dl); err != nil {
				return fmt.Errorf("dieline %q: %w", df.Name, err)
			}
			summary.DielinesCreated++
		}

		batch := make([]*carton.Carton, 0, len(f.Cartons))
		for _, cf := range f.Cartons {
			c, err := s.buildCarton(cf, creator)
			if err != nil {
				return fmt.Errorf("carton %q: %w", cf.Name, err)
			}
			batch = append(batch, c)
		}
		if err := s.cartons.CreateBatch(ctx, batch); err != nil {
			return err
		}
		summary.CartonsCreated = len(batch)
		return nil
	})
	if err != nil {
		s.logger.Errorw("seeding failed", "error", err)
		return Summary{}, err
	}

	s.logger.Infow("seed applied",
		"users_created", summary.UsersCreated,
		"users_skipped", summary.UsersSkipped,
		"dielines_created", summary.DielinesCreated,
		"cartons_created", summary.CartonsCreated)
	return summary, nil
}

func (s *Seeder) buildCarton(cf CartonFixture, creator func(string) (uint, error)) (*carton.Carton, error) {
	by, err := creator(cf.CreatedBy)
	if err != nil {
		return nil, err
	}
	box, err := dimension.NewBoxFromFloat(cf.Length, cf.Breadth, cf.Height)
	if err != nil {
		return nil, err
	}
	if cf.AvailableQuantity == nil {
		return carton.NewCarton(cf.Name, cf.CompanyName, box, cf.TotalQuantity, by)
	}
	stock, err := carton.RestoreStock(cf.TotalQuantity, *cf.AvailableQuantity)
	if err != nil {
		return nil, err
	}
	return carton.NewCartonWithStock(cf.Name, cf.CompanyName, box, stock, by)
}
