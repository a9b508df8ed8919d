package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopLite/internal/catalog"
	"ShopLite/internal/view"
	"ShopLite/pkg/kit"
)

const (
	addProductLimitPerMin = 30
	limitWindowSeconds    = 60
)

type Server struct {
	Store *catalog.Store
	View  *view.Renderer
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	limiter := kit.NewIPRateLimiter(addProductLimitPerMin, limitWindowSeconds)

	r.Get("/add-product", s.form)
	r.With(limiter.Middleware).Post("/add-product", s.create)
	r.Get("/products", s.list)

	return r
}

func (s *Server) form(w http.ResponseWriter, r *http.Request) {
	vm := view.ProductForm{
		Page: view.Page{Title: "Add Product", Path: "/admin/add-product"},
	}

	if err := s.View.Render(w, http.StatusOK, "add-product", vm); err != nil {
		if s.Log != nil {
			s.Log.Error("render add-product failed", zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	// Unparseable price is stored as 0 rather than rejecting the
	// submission; this form carries no validation.
	price, _ := strconv.ParseFloat(r.PostFormValue("price"), 64)

	p := s.Store.Add(
		r.PostFormValue("title"),
		r.PostFormValue("imageUrl"),
		price,
		r.PostFormValue("description"),
	)

	if s.Log != nil {
		s.Log.Info("product added",
			zap.String("id", p.ID),
			zap.String("title", p.Title),
		)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products := s.Store.List()

	vm := view.AdminProducts{
		Page:        view.Page{Title: "Admin Products", Path: "/admin/products"},
		Products:    products,
		HasProducts: len(products) > 0,
	}

	if err := s.View.Render(w, http.StatusOK, "admin-products", vm); err != nil {
		if s.Log != nil {
			s.Log.Error("render admin-products failed", zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
