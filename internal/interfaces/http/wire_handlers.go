package http

import (
	"github.com/cartonworks/stockline/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	cartonHandler     *handlers.CartonHandler
	dielineHandler    *handlers.DielineHandler
	assignmentHandler *handlers.AssignmentHandler
	dashboardHandler  *handlers.DashboardHandler
	userHandler       *handlers.UserHandler
	healthHandler     *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		cartonHandler: handlers.NewCartonHandler(
			u.createCartonUC, u.updateCartonUC, u.getCartonUC, u.listCartonsUC, u.deleteCartonUC,
			u.importCartonsUC, u.exportCartonsUC, u.compatibleCartonsUC, u.listAssignmentsUC,
			log.Named("carton"),
		),
		dielineHandler: handlers.NewDielineHandler(
			u.createDielineUC, u.updateDielineUC, u.getDielineUC, u.listDielinesUC, u.deleteDielineUC,
			u.compatibleCartonsUC, log.Named("dieline"),
		),
		assignmentHandler: handlers.NewAssignmentHandler(
			u.createAssignmentUC, u.listAssignmentsUC, u.getAssignmentUC, u.reverseAssignmentUC,
			u.exportAssignmentsUC, log.Named("assignment"),
		),
		dashboardHandler: handlers.NewDashboardHandler(u.statsUC, u.recentActivityUC, u.lowStockUC, log.Named("dashboard")),
		userHandler: handlers.NewUserHandler(
			u.listUsersUC, u.getUserUC, u.updateUserUC, u.deleteUserUC, log.Named("user"),
		),
		healthHandler: handlers.NewHealthHandler(c.db, c.redis),
	}
}
