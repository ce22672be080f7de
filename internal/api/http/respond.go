package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// listResponse is the envelope for collection endpoints. Empty collections
// respond 200 with an empty results array, never an error.
type listResponse struct {
	Count    int32       `json:"count"`
	Page     int32       `json:"page"`
	PageSize int32       `json:"page_size"`
	Results  interface{} `json:"results"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func respondList(w http.ResponseWriter, count int32, pg paging, results interface{}) {
	respondJSON(w, http.StatusOK, listResponse{
		Count:    count,
		Page:     pg.Page,
		PageSize: pg.PageSize,
		Results:  results,
	})
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.As(err, &verrs):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotRentable), errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
