package http

import (
	"net/http"

	"storefront-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	ProductID int32 `json:"product_id" validate:"required,gt=0"`
}

// Create handles POST /api/v1/rentals. The renter is the caller's profile;
// an unavailable product responds 409.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req createRentalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), userID, req.ProductID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

// Return handles POST /api/v1/rentals/{id}/return.
func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	rentalID, err := parseIDVar(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.rentalSvc.ReturnRental(r.Context(), userID, rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

// List handles GET /api/v1/rentals. Global enumeration.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	pg := parsePaging(r)
	rentals, count, err := h.rentalSvc.ListRentals(r.Context(), pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, rentals)
}

// ListMine handles GET /api/v1/rentals/mine.
func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	pg := parsePaging(r)
	rentals, count, err := h.rentalSvc.ListMyRentals(r.Context(), userID, pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, rentals)
}
