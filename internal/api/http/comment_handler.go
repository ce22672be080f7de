package http

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/service"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

type createCommentRequest struct {
	ProductID int32  `json:"product_id" validate:"required,gt=0"`
	Body      string `json:"body" validate:"required"`
}

// Create handles POST /api/v1/comments. The owner is the authenticated
// caller.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req createCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	comment, err := h.commentSvc.CreateComment(r.Context(), userID, req.ProductID, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// List handles GET /api/v1/comments. Public; filterable by product id and
// owner username, newest first.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.CommentFilter{
		OwnerUsername: query.Get("owner"),
	}
	if raw := query.Get("product"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.ProductID = int32(productID)
	}

	pg := parsePaging(r)
	comments, count, err := h.commentSvc.ListComments(r.Context(), filter, pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, comments)
}

// Get handles GET /api/v1/comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	comment, err := h.commentSvc.GetComment(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comment)
}
