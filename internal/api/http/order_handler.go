package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/service"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

type createOrderRequest struct {
	City    string            `json:"city" validate:"required"`
	Street  string            `json:"street" validate:"required"`
	Zipcode string            `json:"zipcode" validate:"required"`
	Items   []createOrderItem `json:"items" validate:"required,min=1,dive"`
}

type createOrderItem struct {
	ProductID int32 `json:"product_id" validate:"required,gt=0"`
	Quantity  int32 `json:"quantity" validate:"required,min=1"`
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req createOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	shipping := domain.ShippingAddress{
		City:    req.City,
		Street:  req.Street,
		Zipcode: req.Zipcode,
	}
	items := make([]domain.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderSvc.CreateOrder(r.Context(), userID, shipping, items)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

// List handles GET /api/v1/orders. Caller-owned orders only.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	pg := parsePaging(r)
	orders, count, err := h.orderSvc.ListOrders(r.Context(), userID, pg.Page, pg.PageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, count, pg, orders)
}

// Get handles GET /api/v1/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	orderID, err := parseIDVar(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	order, err := h.orderSvc.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func parseIDVar(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation
	}
	return int32(id), nil
}
