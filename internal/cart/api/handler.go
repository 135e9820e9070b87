package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/cart/app"
	"github.com/vetstore-io/vetstore/internal/cart/domain"
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
	r.Post("/carritos/", h.CreateCart)
	r.Get("/carritos/{id}", h.GetCart)
	r.Delete("/carritos/{id}", h.DeleteCart)
	r.Get("/carritos/{id}/productos", h.ListItems)
	r.Delete("/carritos/{id}/productos/{productID}", h.RemoveItem)
	r.Post("/carrito-productos/", h.AddOrUpdateItem)
}

type lineItemPayload struct {
	CartID    string    `json:"carrito"`
	ProductID string    `json:"producto"`
	Quantity  int32     `json:"cantidad"`
	AddedAt   time.Time `json:"agregado_en,omitempty"`
}

func toItemPayload(item domain.LineItem) lineItemPayload {
	return lineItemPayload{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		AddedAt:   item.AddedAt,
	}
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.CreateCart(r.Context())
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, map[string]string{"id": cart.ID})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")

	cart, err := h.svc.GetCart(r.Context(), cartID)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	items, err := h.svc.ListItems(r.Context(), cartID)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out := make([]lineItemPayload, 0, len(items))
	for _, item := range items {
		out = append(out, toItemPayload(item))
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":        cart.ID,
		"link_pago": cart.PaymentLink,
		"creado_en": cart.CreatedAt,
		"productos": out,
	})
}

func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCart(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out := make([]lineItemPayload, 0, len(items))
	for _, item := range items {
		out = append(out, toItemPayload(item))
	}
	httpx.RespondJSON(w, http.StatusOK, out)
}

func (h *Handler) AddOrUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req lineItemPayload
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.svc.AddOrUpdateItem(r.Context(), req.CartID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, toItemPayload(item))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productID"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInsufficientStock):
		httpx.RespondError(w, http.StatusBadRequest, "Stock insuficiente")
	case errors.Is(err, app.ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, "datos de carrito inválidos")
	case errors.Is(err, app.ErrNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Carrito o producto no encontrado")
	default:
		h.log.Error("cart request failed", slog.Any("err", err))
		httpx.RespondError(w, http.StatusInternalServerError, "error interno")
	}
}
