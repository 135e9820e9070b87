package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/orders/app"
	"github.com/vetstore-io/vetstore/internal/orders/domain"
	"github.com/vetstore-io/vetstore/pkg/httpx"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/pedidos", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}/estado", h.UpdateStatus)
	})
}

type orderItemPayload struct {
	ProductID string `json:"producto"`
	Name      string `json:"nombre"`
	UnitPrice int64  `json:"precio"`
	Quantity  int32  `json:"cantidad"`
	LineTotal int64  `json:"total_linea"`
}

type orderPayload struct {
	ID        string             `json:"id"`
	CartID    string             `json:"carrito"`
	Status    string             `json:"estado"`
	Currency  string             `json:"moneda"`
	SubTotal  int64              `json:"subtotal"`
	Total     int64              `json:"total"`
	Items     []orderItemPayload `json:"items"`
	CreatedAt time.Time          `json:"creado_en"`
}

func toPayload(o domain.Order) orderPayload {
	items := make([]orderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitAmount,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotalAmount,
		})
	}
	return orderPayload{
		ID:        o.ID,
		CartID:    o.CartID,
		Status:    o.Status,
		Currency:  o.Currency,
		SubTotal:  o.SubTotalAmount,
		Total:     o.TotalAmount,
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CartID string `json:"carrito"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), req.CartID)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, toPayload(order))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, toPayload(order))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"estado"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, toPayload(order))
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		httpx.RespondError(w, http.StatusBadRequest, "El carrito está vacío")
	case errors.Is(err, app.ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, "datos de pedido inválidos")
	case errors.Is(err, app.ErrNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Pedido o carrito no encontrado")
	default:
		h.log.Error("order request failed", slog.Any("err", err))
		httpx.RespondError(w, http.StatusInternalServerError, "error interno")
	}
}
