package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Profile *ProfileHandler
	Order   *OrderHandler
	Rental  *RentalHandler
	Comment *CommentHandler
}

// NewRouter mounts the full API surface under /api/v1. Authentication is
// enforced by the middleware against the endpoint security config, so
// handlers only ever see requests that already cleared their required level.
func NewRouter(h Handlers, authMW *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(authMW.Handler)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog
	api.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{slug}", h.Product.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentready", h.Product.ListRentReady).Methods(http.MethodGet)

	// Users and sessions
	api.HandleFunc("/users", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/users", h.Auth.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	// Profile
	api.HandleFunc("/profile", h.Profile.Get).Methods(http.MethodGet)
	api.HandleFunc("/profile/{username}", h.Profile.GetByUsername).Methods(http.MethodGet)

	// Orders
	api.HandleFunc("/orders", h.Order.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", h.Order.Get).Methods(http.MethodGet)

	// Comments
	api.HandleFunc("/comments", h.Comment.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments", h.Comment.List).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", h.Comment.Get).Methods(http.MethodGet)

	// Rentals. The static /rentals/mine route is registered before the
	// /rentals/{id}/return template so mux matches it first.
	api.HandleFunc("/rentals", h.Rental.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", h.Rental.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/mine", h.Rental.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/return", h.Rental.Return).Methods(http.MethodPost)

	return r
}
