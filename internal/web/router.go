package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/mergington/activities/internal/handlers"
	"github.com/mergington/activities/internal/logging"
	"github.com/mergington/activities/internal/metrics"
	svc "github.com/mergington/activities/internal/services"
)

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Catalog    *svc.Catalog
	Ledger     *svc.Ledger
	Log        logrus.FieldLogger
	StaticDir  string
	PublicURL  string
	AdminToken string
}

func Router(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(logging.AccessLog{Log: d.Log}))
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)

	// Public pages
	r.Get("/", handlers.Root)
	r.Get("/healthz", handlers.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))

	// Activities
	r.Route("/activities", func(ar chi.Router) {
		ar.Get("/", handlers.ListActivities(d.Catalog, d.Log))
		ar.Post("/{name}/signup", handlers.Signup(d.Ledger, d.Log))
		ar.Delete("/{name}/unregister", handlers.Unregister(d.Ledger, d.Log))
		ar.Get("/{name}/qr.png", handlers.QR(d.Catalog, d.PublicURL, d.Log))
	})

	// --- Admin routes (token guard) ---
	r.Route("/admin", func(ar chi.Router) {
		ar.Post("/login", handlers.AdminLogin(d.AdminToken))
		ar.Post("/logout", handlers.AdminLogout)

		ar.Group(func(ag chi.Router) {
			ag.Use(handlers.RequireAdmin(d.AdminToken))

			ag.Post("/activities", handlers.AdminCreateActivity(d.Catalog, d.Log))
			ag.Delete("/activities/{name}", handlers.AdminDeleteActivity(d.Catalog, d.Log))
			ag.Get("/activities/{name}/roster", handlers.AdminRoster(d.Catalog, d.Log))
			ag.Get("/activities/{name}/roster.csv", handlers.AdminRosterCSV(d.Catalog, d.Log))
			ag.Get("/capacity", handlers.AdminCapacity(d.Catalog, d.Log))
		})
	})

	return r
}
