//GET    /api/v1/health                 # Health check
//GET    /materias                      # Subject catalog (JSON document)
//POST   /materias
//GET    /materias/{id}
//GET    /materias/{id}/n8n             # n8n item envelope
//PUT    /materias/{id}                 # Partial update
//DELETE /materias/{id}
//GET    /api/students                  # Student records (SQL, optional)
//POST   /api/students
//GET    /api/students/{id}
//PUT    /api/students/{id}
//DELETE /api/students/{id}
//GET    /api/debts/student/{studentId} # Mock billing lookup

package api

import (
	debtAPI "escuela/internal/app/server/api/http/debt"
	healthAPI "escuela/internal/app/server/api/http/health"
	materiaAPI "escuela/internal/app/server/api/http/materia"
	"escuela/internal/app/server/api/http/middleware"
	"escuela/internal/app/server/api/http/middleware/logger"
	studentAPI "escuela/internal/app/server/api/http/student"
	"escuela/internal/domain/debt"
	"escuela/internal/domain/materia"
	"escuela/internal/domain/student"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

// Deps are the services behind the API. A nil Students disables the
// student routes.
type Deps struct {
	Materias materia.Servicer
	Students student.Servicer
	Debts    debt.Lookup
}

type Handlers struct {
	Health  *healthAPI.Handler
	Materia *materiaAPI.Handler
	Student *studentAPI.Handler
	Debt    *debtAPI.Handler
}

// New builds the router with every operation registered through huma.
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	config := huma.DefaultConfig("Escuela API", "1.0.0")
	// keep response bodies exactly as documented, without a $schema link
	config.CreateHooks = nil
	API := humachi.New(mux, config)

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.Materia.SetupRoutes(API)
	if h.Student != nil {
		h.Student.SetupRoutes(API)
	}
	h.Debt.SetupRoutes(API)

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	materiaHandler := materiaAPI.NewHandler(deps.Materias, log, middlewares.GetAllAndClear())

	var studentHandler *studentAPI.Handler
	if deps.Students != nil {
		middlewares.Add(loggerMW.Middleware())
		studentHandler = studentAPI.NewHandler(deps.Students, log, middlewares.GetAllAndClear())
	} else {
		log.Warn("student storage not configured, student routes disabled")
	}

	middlewares.Add(loggerMW.Middleware())
	debtHandler := debtAPI.NewHandler(deps.Debts, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Materia: materiaHandler,
		Student: studentHandler,
		Debt:    debtHandler,
	}
}
