package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/catalog/app"
	"github.com/vetstore-io/vetstore/internal/catalog/domain"
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
	r.Route("/productos", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Patch("/{id}/stock", h.UpdateStock)
		r.Delete("/{id}", h.DeleteProduct)
	})
}

type productPayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	// Price in the currency's minor unit.
	Price     int64     `json:"precio"`
	Currency  string    `json:"moneda,omitempty"`
	Stock     int32     `json:"stock"`
	Category  string    `json:"categoria"`
	CreatedAt time.Time `json:"creado_en,omitempty"`
}

func toPayload(p domain.Product) productPayload {
	return productPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency,
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}
	if req.Currency == "" {
		req.Currency = "COP"
	}

	p, err := h.svc.CreateProduct(r.Context(), req.Name, req.Description, req.Category, req.Currency, req.Price, req.Stock)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, toPayload(p))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, toPayload(p))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.svc.ListProducts(r.Context(), r.URL.Query().Get("categoria"), limit)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	out := make([]productPayload, 0, len(products))
	for _, p := range products {
		out = append(out, toPayload(p))
	}
	httpx.RespondJSON(w, http.StatusOK, out)
}

func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stock int32 `json:"stock"`
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	p, err := h.svc.UpdateStock(r.Context(), chi.URLParam(r, "id"), req.Stock)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, toPayload(p))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, "datos de producto inválidos")
	case errors.Is(err, app.ErrNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Producto no encontrado")
	default:
		h.log.Error("catalog request failed", slog.Any("err", err))
		httpx.RespondError(w, http.StatusInternalServerError, "error interno")
	}
}
