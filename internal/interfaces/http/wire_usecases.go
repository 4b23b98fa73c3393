package http

import (
	assignmentUsecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	cartonUsecases "github.com/cartonworks/stockline/internal/application/carton/usecases"
	dashboardUsecases "github.com/cartonworks/stockline/internal/application/dashboard/usecases"
	dielineUsecases "github.com/cartonworks/stockline/internal/application/dieline/usecases"
	userUsecases "github.com/cartonworks/stockline/internal/application/user/usecases"
	"github.com/cartonworks/stockline/internal/domain/compatibility"
	"github.com/cartonworks/stockline/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Carton
	createCartonUC  *cartonUsecases.CreateCartonUseCase
	updateCartonUC  *cartonUsecases.UpdateCartonUseCase
	getCartonUC     *cartonUsecases.GetCartonUseCase
	listCartonsUC   *cartonUsecases.ListCartonsUseCase
	deleteCartonUC  *cartonUsecases.DeleteCartonUseCase
	importCartonsUC *cartonUsecases.ImportCartonsUseCase
	exportCartonsUC *cartonUsecases.ExportCartonsUseCase

	// Dieline
	createDielineUC *dielineUsecases.CreateDielineUseCase
	updateDielineUC *dielineUsecases.UpdateDielineUseCase
	getDielineUC    *dielineUsecases.GetDielineUseCase
	listDielinesUC  *dielineUsecases.ListDielinesUseCase
	deleteDielineUC *dielineUsecases.DeleteDielineUseCase

	// Assignment
	compatibleCartonsUC *assignmentUsecases.CompatibleCartonsUseCase
	createAssignmentUC  *assignmentUsecases.CreateAssignmentUseCase
	listAssignmentsUC   *assignmentUsecases.ListAssignmentsUseCase
	getAssignmentUC     *assignmentUsecases.GetAssignmentUseCase
	reverseAssignmentUC *assignmentUsecases.ReverseAssignmentUseCase
	exportAssignmentsUC *assignmentUsecases.ExportAssignmentsUseCase

	// Dashboard
	statsUC          *dashboardUsecases.GetStatsUseCase
	recentActivityUC *dashboardUsecases.RecentActivityUseCase
	lowStockUC       *dashboardUsecases.LowStockUseCase

	// User
	listUsersUC  *userUsecases.ListUsersUseCase
	getUserUC    *userUsecases.GetUserUseCase
	updateUserUC *userUsecases.UpdateUserUseCase
	deleteUserUC *userUsecases.DeleteUserUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	alloc := c.cfg.Allocation
	ratio := alloc.LowStockRatio
	renderer := markdown.NewRenderer()
	resolver := compatibility.NewResolver(c.tolerance)
	assembler := assignmentUsecases.NewAssembler(r.dielineRepo, r.cartonRepo, r.userRepo)

	ucs := &allUseCases{
		createCartonUC: cartonUsecases.NewCreateCartonUseCase(r.cartonRepo, r.userRepo, ratio, log),
		updateCartonUC: cartonUsecases.NewUpdateCartonUseCase(
			r.cartonRepo, r.ledger, r.userRepo, r.txMgr, ratio, alloc.MaxCommitAttempts, log,
		),
		getCartonUC:     cartonUsecases.NewGetCartonUseCase(r.cartonRepo, r.userRepo, ratio, log),
		listCartonsUC:   cartonUsecases.NewListCartonsUseCase(r.cartonRepo, r.userRepo, ratio, log),
		deleteCartonUC:  cartonUsecases.NewDeleteCartonUseCase(r.cartonRepo, log),
		importCartonsUC: cartonUsecases.NewImportCartonsUseCase(r.cartonRepo, r.txMgr, log),
		exportCartonsUC: cartonUsecases.NewExportCartonsUseCase(r.cartonRepo, ratio, log),

		createDielineUC: dielineUsecases.NewCreateDielineUseCase(r.dielineRepo, r.userRepo, renderer, log),
		updateDielineUC: dielineUsecases.NewUpdateDielineUseCase(r.dielineRepo, r.userRepo, renderer, log),
		getDielineUC:    dielineUsecases.NewGetDielineUseCase(r.dielineRepo, r.userRepo, renderer, log),
		listDielinesUC:  dielineUsecases.NewListDielinesUseCase(r.dielineRepo, r.userRepo, log),
		deleteDielineUC: dielineUsecases.NewDeleteDielineUseCase(r.dielineRepo, log),

		compatibleCartonsUC: assignmentUsecases.NewCompatibleCartonsUseCase(
			r.dielineRepo, r.cartonRepo, r.userRepo, resolver, ratio, log,
		),
		createAssignmentUC: assignmentUsecases.NewCreateAssignmentUseCase(
			r.assignmentRepo, r.dielineRepo, r.cartonRepo, r.ledger, r.txMgr,
			resolver, assembler, c.idempotency, c.notifier,
			assignmentUsecases.AllocationOptions{
				MaxCommitAttempts:    alloc.MaxCommitAttempts,
				LowStockRatio:        ratio,
				EnforceCompatibility: alloc.EnforceCompatibility,
			},
			log,
		),
		listAssignmentsUC: assignmentUsecases.NewListAssignmentsUseCase(r.assignmentRepo, r.cartonRepo, assembler, log),
		getAssignmentUC:   assignmentUsecases.NewGetAssignmentUseCase(r.assignmentRepo, assembler, log),
		reverseAssignmentUC: assignmentUsecases.NewReverseAssignmentUseCase(
			r.assignmentRepo, r.cartonRepo, r.ledger, r.txMgr, assembler, log,
		),

		listUsersUC:  userUsecases.NewListUsersUseCase(r.userRepo, log),
		getUserUC:    userUsecases.NewGetUserUseCase(r.userRepo, log),
		updateUserUC: userUsecases.NewUpdateUserUseCase(r.userRepo, log),
		deleteUserUC: userUsecases.NewDeleteUserUseCase(r.userRepo, log),
	}
	ucs.exportAssignmentsUC = assignmentUsecases.NewExportAssignmentsUseCase(ucs.listAssignmentsUC, log)

	ucs.statsUC = dashboardUsecases.NewGetStatsUseCase(r.dielineRepo, r.cartonRepo, r.assignmentRepo, r.userRepo, ratio, log)
	ucs.recentActivityUC = dashboardUsecases.NewRecentActivityUseCase(ucs.listAssignmentsUC, log)
	ucs.lowStockUC = dashboardUsecases.NewLowStockUseCase(r.cartonRepo, r.userRepo, ratio, log)

	c.ucs = ucs
}
