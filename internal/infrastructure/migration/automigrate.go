package migration

import (
	"github.com/cartonworks/stockline/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CartonModel{},
		&models.DielineModel{},
		&models.AssignmentModel{},
		&models.AssignmentCartonModel{},
		&models.AssignmentReversalModel{},
	}
}
