package shop

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopLite/internal/catalog"
	"ShopLite/internal/view"
)

type Server struct {
	Store *catalog.Store
	View  *view.Renderer
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.index)

	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	products := s.Store.List()

	vm := view.ShopIndex{
		Page:        view.Page{Title: "Shop", Path: "/"},
		Products:    products,
		HasProducts: len(products) > 0,
	}

	if err := s.View.Render(w, http.StatusOK, "shop", vm); err != nil {
		if s.Log != nil {
			s.Log.Error("render shop failed", zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
