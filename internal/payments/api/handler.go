package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/payments/app"
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
	r.Post("/crear-sesion-pago", h.CreateSession)
}

type cartEntry struct {
	Name string `json:"nombre"`
	// Price in the currency's minor unit.
	Price    int64 `json:"precio"`
	Quantity int64 `json:"cantidad"`
}

type createSessionRequest struct {
	Cart       []cartEntry `json:"carrito"`
	BuyerEmail string      `json:"correo_usuario"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	lines := make([]app.Line, 0, len(req.Cart))
	for _, entry := range req.Cart {
		qty := entry.Quantity
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, app.Line{
			Name:       entry.Name,
			UnitAmount: entry.Price,
			Quantity:   qty,
		})
	}

	url, err := h.svc.CreateSession(r.Context(), lines, req.BuyerEmail)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		httpx.RespondError(w, http.StatusBadRequest, "El carrito está vacío")
	case errors.Is(err, app.ErrInvalidInput):
		httpx.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("session creation failed", slog.Any("err", err))
		httpx.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
