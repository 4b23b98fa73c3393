package http

import (
	"gorm.io/gorm"

	"github.com/cartonworks/stockline/internal/domain/assignment"
	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dieline"
	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	dielineRepo    dieline.Repository
	cartonRepo     carton.Repository
	assignmentRepo assignment.Repository
	ledger         carton.StockLedger
	txMgr          *db.TransactionManager
}

func newRepositories(database *gorm.DB) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(database),
		dielineRepo:    repository.NewDielineRepository(database),
		cartonRepo:     repository.NewCartonRepository(database),
		assignmentRepo: repository.NewAssignmentRepository(database),
		ledger:         repository.NewStockLedger(database),
		txMgr:          db.NewTransactionManager(database),
	}
}
