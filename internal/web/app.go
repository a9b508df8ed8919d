package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ShopLite/internal/admin"
	"ShopLite/internal/shop"
	"ShopLite/internal/view"
	"ShopLite/pkg/kit"
)

//go:embed static
var staticFS embed.FS

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

func NewHandler(shopSrv *shop.Server, adminSrv *admin.Server, v *view.Renderer, deps HTTPDeps) (http.Handler, error) {
	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))

	// NotFound must be set before Mount so the subrouters inherit it.
	r.NotFound(notFound(v, deps.Log))

	r.Mount("/admin", adminSrv.Routes())
	r.Mount("/", shopSrv.Routes())

	return r, nil
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func notFound(v *view.Renderer, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vm := view.NotFound{
			Page: view.Page{Title: "Page Not Found", Path: r.URL.Path},
		}

		if err := v.Render(w, http.StatusNotFound, "not-found", vm); err != nil {
			if log != nil {
				log.Error("render not-found failed", zap.Error(err))
			}
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
}
