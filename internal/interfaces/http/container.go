package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assignmentUsecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/infrastructure/auth"
	"github.com/cartonworks/stockline/internal/infrastructure/cache"
	"github.com/cartonworks/stockline/internal/infrastructure/config"
	"github.com/cartonworks/stockline/internal/infrastructure/email"
	"github.com/cartonworks/stockline/internal/interfaces/http/middleware"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// Container holds infrastructure, repositories, use cases and handlers, wires
// them together and releases them on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client // nil when redis is disabled

	tolerance   dimension.Tolerance
	idempotency assignmentUsecases.IdempotencyStore
	notifier    assignmentUsecases.LowStockNotifier

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	writeLimiter   *middleware.RateLimiter // nil when disabled
}

// NewContainer wires the application. Redis is optional; when enabled it must
// be reachable at startup.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.repos = newRepositories(db)
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	tolerance, err := dimension.NewTolerance(cfg.Allocation.ToleranceMM)
	if err != nil {
		return fmt.Errorf("invalid allocation.tolerance_mm: %w", err)
	}
	c.tolerance = tolerance

	var dedup email.Deduplicator
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis, log)
		if err != nil {
			return err
		}
		c.redis = client
		c.idempotency = cache.NewIdempotencyStore(client, cfg.Allocation.IdempotencyTTL(), log.Named("idempotency"))
		dedup = cache.NewAlertDeduplicator(client, cache.DefaultAlertCooldown)

		if cfg.Server.WriteRateLimit > 0 {
			c.writeLimiter = middleware.NewRateLimiter(client, "write", cfg.Server.WriteRateLimit, time.Minute, log)
		}
	} else {
		log.Infow("redis disabled, idempotency keys and alert cooldowns are not enforced")
	}

	if cfg.Email.Enabled {
		c.notifier = email.NewLowStockNotifier(cfg.Email, dedup, log.Named("email"))
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.repos.userRepo, log.Named("auth"))

	return nil
}

// Shutdown releases connections owned by the container. The database is
// closed by the caller that opened it.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
