// file: internals/features/memberships/memberships/route/membership_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	membershipController "fitnezz_backend/internals/features/memberships/memberships/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// MembershipUserRoutes mounts the member-facing endpoints under /api/u.
func MembershipUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := membershipController.NewMembershipController(db)

	memberships := user.Group("/memberships")
	memberships.Get("/me", ctrl.GetMyMembership)
	memberships.Get("/history", ctrl.GetMyMembershipHistory)
}

// MembershipAdminRoutes mounts the admin listing under /api/a.
func MembershipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := membershipController.NewMembershipController(db)

	memberships := admin.Group("/memberships",
		auth.OnlyRoles(constants.RoleErrorAdmin("membership administration"), constants.AdminAndAbove...),
	)
	memberships.Get("/", ctrl.ListMemberships)
}
