// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	periodSeeds "egitimportal_backend/internals/seeds/periods"
	userSeeds "egitimportal_backend/internals/seeds/users"
)

// RunAllSeeds: geliştirme ortamı için örnek veri. Idempotent; var olan
// kayıtlar atlanır. SEED=true iken main'den çağrılır.
func RunAllSeeds(db *gorm.DB) {
	periodSeeds.SeedPeriodsFromJSON(db, "internals/seeds/periods/data_periods.json")
	userSeeds.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
