package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmoreira/workshop-backend/api/controllers"
	"github.com/dmoreira/workshop-backend/api/middleware"
	"github.com/dmoreira/workshop-backend/internal/customers"
	"github.com/dmoreira/workshop-backend/internal/parts"
	"github.com/dmoreira/workshop-backend/internal/reports"
	"github.com/dmoreira/workshop-backend/internal/sales"
	"github.com/dmoreira/workshop-backend/internal/services"
	"github.com/dmoreira/workshop-backend/internal/settings"
	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/dmoreira/workshop-backend/pkg/metrics"
	"github.com/dmoreira/workshop-backend/pkg/redis"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Logger   *logger.Logger
	DB       db.Pinger
	Cache    redis.Pinger
	Metrics  *metrics.HTTPMetrics
	MetricsH http.Handler

	Customers customers.Service
	Parts     parts.Service
	Services  services.Service
	Sales     sales.Service
	Settings  settings.Service
	Reports   reports.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
		middleware.Metrics(deps.Metrics),
	)

	logg := deps.Logger

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health())
		r.Get("/health/ready", controllers.Ready(deps.DB, deps.Cache, logg))

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(deps.Customers, logg))
			r.Post("/", controllers.CreateCustomer(deps.Customers, logg))
			r.Get("/{id}", controllers.GetCustomer(deps.Customers, logg))
			r.Put("/{id}", controllers.UpdateCustomer(deps.Customers, logg))
			r.Delete("/{id}", controllers.DeleteCustomer(deps.Customers, logg))
		})

		r.Route("/parts", func(r chi.Router) {
			r.Get("/", controllers.ListParts(deps.Parts, logg))
			r.Post("/", controllers.CreatePart(deps.Parts, logg))
			// registered before /{id} so "low-stock" never parses as an id
			r.Get("/low-stock", controllers.ListLowStockParts(deps.Parts, logg))
			r.Get("/{id}", controllers.GetPart(deps.Parts, logg))
			r.Put("/{id}", controllers.UpdatePart(deps.Parts, logg))
			r.Delete("/{id}", controllers.DeletePart(deps.Parts, logg))
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", controllers.ListServices(deps.Services, logg))
			r.Post("/", controllers.CreateService(deps.Services, logg))
			r.Get("/{id}", controllers.GetService(deps.Services, logg))
			r.Put("/{id}", controllers.UpdateService(deps.Services, logg))
			r.Delete("/{id}", controllers.DeleteService(deps.Services, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(deps.Sales, logg))
			r.Post("/", controllers.CreateSale(deps.Sales, logg))
			r.Get("/{id}", controllers.GetSale(deps.Sales, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(deps.Settings, logg))
			r.Put("/{key}", controllers.UpdateSetting(deps.Settings, logg))
		})

		r.Get("/reports/sales", controllers.SalesReport(deps.Reports, logg))
	})

	if deps.MetricsH != nil {
		r.Handle("/metrics", deps.MetricsH)
	} else {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
