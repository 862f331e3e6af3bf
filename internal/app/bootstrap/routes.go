// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contentfeature "github.com/caprecon/backend/internal/app/features/content"
	diagfeature "github.com/caprecon/backend/internal/app/features/diag"
	homefeature "github.com/caprecon/backend/internal/app/features/home"
	intakefeature "github.com/caprecon/backend/internal/app/features/intake"
	contentstore "github.com/caprecon/backend/internal/app/store/content"
	intakestore "github.com/caprecon/backend/internal/app/store/intake"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup
// have completed. deps may carry nil Mongo handles (degraded mode); the
// stores accept that and fail per-request instead.
//
// The API serves a public marketing-site frontend from arbitrary origins,
// hence the permissive CORS policy.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Liveness message for the site root.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Store diagnostics; tolerant of a missing database.
	diagHandler := diagfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, appCfg.MongoURI, logger)
	r.Mount("/test", diagfeature.Routes(diagHandler))

	// Published content reads and intake form writes.
	contentHandler := contentfeature.NewHandler(contentstore.New(deps.MongoDatabase), logger)
	intakeHandler := intakefeature.NewHandler(intakestore.New(deps.MongoDatabase), logger)

	r.Route("/api", func(api chi.Router) {
		api.Get("/hello", homeHandler.ServeHello)
		contentfeature.Register(api, contentHandler)
		intakefeature.Register(api, intakeHandler)
	})

	return r, nil
}
