package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "alisto_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")

	// identity reconciliation (static paths before /:id)
	users.Post("/from-auth", ctrl.CreateOrGetFromAuth)
	users.Put("/sync-from-auth", ctrl.SyncFromAuth)
	users.Get("/by-external/:provider/:externalId", ctrl.GetUserByExternalIdentity)

	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
	users.Patch("/:id/activate", ctrl.ActivateUser)
}
