// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	users "fitnezz_backend/internals/seeds/users"
)

// Run executes the startup seeders. Only the super-admin seeder exists,
// everything else is created through the API.
func Run(db *gorm.DB) error {
	return users.EnsureSuperAdmin(db)
}
