package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"storefront-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get handles GET /api/v1/profile. Always the caller's own profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	profile, err := h.profileSvc.GetOwnProfile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// GetByUsername handles GET /api/v1/profile/{username}. Any username other
// than the caller's own is forbidden.
func (h *ProfileHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	username := mux.Vars(r)["username"]
	profile, err := h.profileSvc.GetOwnProfileByUsername(r.Context(), userID, username)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
