// file: internals/databases/migrate.go
package database

import (
	"log"

	classModel "fitnezz_backend/internals/features/classes/classes/model"
	registrationModel "fitnezz_backend/internals/features/classes/registrations/model"
	equipmentModel "fitnezz_backend/internals/features/equipment/equipment/model"
	paymentModel "fitnezz_backend/internals/features/finance/payments/model"
	membershipModel "fitnezz_backend/internals/features/memberships/memberships/model"
	userModel "fitnezz_backend/internals/features/users/users/model"
)

// Migrate keeps the schema in sync with the models. Disable with
// DB_AUTO_MIGRATE=false when migrations are managed externally.
func Migrate() {
	if getenv("DB_AUTO_MIGRATE", "true") != "true" {
		log.Println("⏭️  auto-migrate disabled")
		return
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&membershipModel.MembershipModel{},
		&paymentModel.PaymentModel{},
		&classModel.FitnessClassModel{},
		&registrationModel.ClassRegistrationModel{},
		&equipmentModel.EquipmentModel{},
	)
	if err != nil {
		log.Fatalf("❌ auto-migrate failed: %v", err)
	}
	log.Println("✅ schema migrated")
}
