package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "med-reminder-api/internal/adapters/storage/memory"
	pg "med-reminder-api/internal/adapters/storage/postgres"
	"med-reminder-api/internal/domain/schedule"
	"med-reminder-api/internal/domain/users"
	"med-reminder-api/internal/middleware"
	"med-reminder-api/internal/platform/logger"
	"med-reminder-api/internal/platform/metrics"
	"med-reminder-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "med-reminder-api/docs"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales; si vienen nil se crean con defaults.
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	met := opts.Metrics
	if met == nil {
		met = metrics.New()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", met.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		scheduleStore schedule.Store
		usersRepo     users.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("could not open postgres, falling back to memory", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	if db != nil {
		scheduleStore = pg.NewScheduleStore(db)
		usersRepo = pg.NewUsersRepo(db)
	} else {
		scheduleStore = mem.NewScheduleStore()
		usersRepo = mem.NewUsersRepo()
	}

	// Services por módulo
	scheduleSvc := schedule.NewService(scheduleStore)
	usersSvc := users.NewService(usersRepo)

	// Rutas por módulo
	schedule.RegisterRoutes(r, scheduleSvc, log, met)
	users.RegisterRoutes(r, usersSvc)

	return r
}
