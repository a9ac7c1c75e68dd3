package router

import (
	"github.com/4NDrew-42/ArtCine/internal/application"
	"github.com/4NDrew-42/ArtCine/internal/container"
	pginfra "github.com/4NDrew-42/ArtCine/internal/infrastructure/postgres"
	handlers "github.com/4NDrew-42/ArtCine/internal/interface/http"
	"github.com/4NDrew-42/ArtCine/internal/router/modules"
)

// InitModules builds the application services from the container singletons
// and registers every feature module with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	movieRepo := pginfra.NewMovieRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	userSvc := application.NewUserService(userRepo, logger)
	movieSvc := application.NewMovieService(movieRepo, container.GetRedis(), cfg.MovieCacheTTL, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), authSvc))
	r.Add(modules.NewMovieModule(handlers.NewMovieHandler(movieSvc, logger), authSvc))
}
