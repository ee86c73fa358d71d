package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/healthtrack-backend/api/controllers"
	"github.com/angelmondragon/healthtrack-backend/api/middleware"
	"github.com/angelmondragon/healthtrack-backend/internal/auth"
	"github.com/angelmondragon/healthtrack-backend/internal/records"
	"github.com/angelmondragon/healthtrack-backend/pkg/config"
	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	"github.com/angelmondragon/healthtrack-backend/pkg/logger"
	"github.com/angelmondragon/healthtrack-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	readiness map[string]controllers.Pinger,
	authService auth.Service,
	recordServices *records.Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if registry != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(registry)))
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Post("/signup", controllers.AuthSignup(authService, logg))
	r.Post("/login", controllers.AuthLogin(authService, logg))
	r.Post("/tokenIsValid", controllers.AuthTokenIsValid(authService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService, logg))

		r.Get("/", controllers.AuthProfile(authService, logg))
		r.Delete("/", controllers.AuthDeleteAccount(authService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, logg))

		mountRecords[models.Medicine](r, records.NameMedicine, recordServices.Medicines, logg)
		mountRecords[models.Reminder](r, records.NameReminders, recordServices.Reminders, logg)
		mountRecords[models.Habit](r, records.NameHabits, recordServices.Habits, logg)
		mountRecords[models.MedicalDetail](r, records.NameMedicalDetails, recordServices.MedicalDetails, logg)
		mountRecords[models.Doctor](r, records.NameDoctor, recordServices.Doctors, logg)
		mountRecords[models.FamilyContact](r, records.NameFamily, recordServices.FamilyContacts, logg)
	})

	return r
}

// mountRecords exposes create, list, update and delete for one record kind.
// Listing is keyed by the owner's id and guarded by RequireOwner; the other
// operations scope by the caller.
func mountRecords[T any, P records.Model[T]](r chi.Router, name string, svc controllers.RecordService[T, P], logg *logger.Logger) {
	r.Route("/"+name, func(r chi.Router) {
		r.Post("/", controllers.RecordCreate(svc, logg))
		r.With(middleware.RequireOwner("userId", logg)).Get("/{userId}", controllers.RecordList(svc, logg))
		r.Put("/{id}", controllers.RecordUpdate(svc, logg))
		r.Delete("/{id}", controllers.RecordDelete(svc, logg))
	})
}
