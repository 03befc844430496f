// file: internals/features/classes/registrations/route/class_registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitnezz_backend/internals/constants"
	registrationController "fitnezz_backend/internals/features/classes/registrations/controller"
	"fitnezz_backend/internals/middlewares/auth"
)

// RegistrationUserRoutes mounts the student enrollment endpoints under
// /api/u. Enrollment rides on the class resource path.
func RegistrationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := registrationController.NewClassRegistrationController(db)

	studentOnly := auth.OnlyRoles(
		constants.RoleErrorStudent("class registration"),
		constants.StudentOnly...,
	)
	user.Post("/classes/:id/register", studentOnly, ctrl.Enroll)
	user.Delete("/classes/:id/register", studentOnly, ctrl.Cancel)
	user.Get("/registrations/me", studentOnly, ctrl.ListMyRegistrations)
}

// RegistrationAdminRoutes mounts the trainer/admin endpoints under
// /api/a: participant lists, attendance and progress notes.
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := registrationController.NewClassRegistrationController(db)

	trainerUp := auth.OnlyRoles(
		constants.RoleErrorTrainer("class administration"),
		constants.TrainerAndAbove...,
	)
	admin.Get("/classes/:id/participants", trainerUp, ctrl.ListParticipants)
	admin.Put("/registrations/:id/attendance", trainerUp, ctrl.UpdateAttendance)
	admin.Put("/registrations/:id/progress", trainerUp, ctrl.UpdateProgress)
}
