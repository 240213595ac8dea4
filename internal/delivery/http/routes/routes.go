package routes

import (
	"log"

	"workbridge/internal/config"
	"workbridge/internal/database"
	"workbridge/internal/delivery/http/handler"
	"workbridge/internal/delivery/http/middleware"
	"workbridge/internal/domain/user"
	"workbridge/internal/pkg/jwt"
	"workbridge/internal/repository"
	"workbridge/internal/usecase"
	"workbridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.ListCache
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires repositories, usecases and handlers onto the app.
func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(deps.Config.JWT.Secret, deps.Config.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, deps.Hub, deps.Cache, deps.Logger)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, deps.Hub, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	jobHandler := handler.NewJobHandler(jobUC)
	appHandler := handler.NewApplicationHandler(appUC)
	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler.RegisterRoutes(authGroup)
	authHandler.RegisterProtectedRoutes(authGroup, authMw.Middleware())

	// GET /jobs is public while the two POSTs under the same prefix belong to
	// different roles, so the guards attach per route rather than per group.
	api.Get("/jobs", jobHandler.List)
	api.Post("/jobs", authMw.Middleware(), authMw.RequireRole(user.RoleEmployer), jobHandler.Create)
	api.Post("/jobs/:id/apply", authMw.Middleware(), authMw.RequireRole(user.RoleJobSeeker), appHandler.Apply)

	applications := api.Group("/applications", authMw.Middleware(), authMw.RequireRole(user.RoleEmployer))
	applications.Post("/:id/reject", appHandler.Reject)
	applications.Post("/:id/schedule-interview", appHandler.ScheduleInterview)

	app.Get("/ws", wsHandler.HandleWS)
}
