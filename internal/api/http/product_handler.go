package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/service"
)

type ProductHandler struct {
	catalogSvc service.CatalogService
}

func NewProductHandler(catalogSvc service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc}
}

// List handles GET /api/v1/products. The query parameters narrow the active
// catalog: category (exact), name (substring), active (presence alone
// selects currently rentable products, its value is ignored).
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ProductFilter{
		Category: query.Get("category"),
		Name:     query.Get("name"),
	}
	if _, ok := query["active"]; ok {
		filter.RentableOnly = true
	}

	pg := parsePaging(r)
	products, count, err := h.catalogSvc.ListCatalog(r.Context(), filter, pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, products)
}

// ListRentReady handles GET /api/v1/rentready.
func (h *ProductHandler) ListRentReady(w http.ResponseWriter, r *http.Request) {
	pg := parsePaging(r)
	products, count, err := h.catalogSvc.ListRentReady(r.Context(), pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, products)
}

// Get handles GET /api/v1/products/{slug}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	product, err := h.catalogSvc.GetProduct(r.Context(), slug)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}
