package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/checkout/app"
	"github.com/vetstore-io/vetstore/internal/checkout/domain"
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
	r.Post("/carritos/{id}/generar-pago/", h.GeneratePayment)
}

type generatePaymentRequest struct {
	BuyerEmail string `json:"correo_usuario"`
}

type quoteLinePayload struct {
	ProductID string `json:"producto"`
	Name      string `json:"nombre"`
	UnitPrice int64  `json:"precio"`
	Quantity  int64  `json:"cantidad"`
	LineTotal int64  `json:"total_linea"`
}

func (h *Handler) GeneratePayment(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")

	// Body is optional: "no body or {}" plus an optional buyer email.
	var req generatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	result, err := h.svc.InitiateCheckout(r.Context(), cartID, req.BuyerEmail)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"link_pago": result.PaymentLink,
		"total":     result.Quote.Total.Amount,
		"moneda":    result.Quote.Total.Currency,
		"items":     toLinePayloads(result.Quote),
	})
}

func toLinePayloads(q domain.Quote) []quoteLinePayload {
	out := make([]quoteLinePayload, 0, len(q.Lines))
	for _, line := range q.Lines {
		out = append(out, quoteLinePayload{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.Amount,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.Amount,
		})
	}
	return out
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	var gwErr *app.GatewayError

	switch {
	case errors.Is(err, app.ErrNotFound):
		httpx.RespondError(w, http.StatusNotFound, "Carrito no encontrado")
	case errors.Is(err, app.ErrEmptyCart):
		httpx.RespondError(w, http.StatusBadRequest, "El carrito está vacío")
	case errors.As(err, &gwErr):
		h.log.Warn("payment gateway failure",
			slog.Int("upstream_status", gwErr.Status),
			slog.String("detail", gwErr.Detail))
		if gwErr.Unreachable() {
			httpx.RespondError(w, http.StatusServiceUnavailable, "Servicio de pagos no disponible")
			return
		}
		httpx.RespondError(w, http.StatusBadGateway, "Error del servicio de pagos")
	default:
		h.log.Error("checkout failed", slog.Any("err", err))
		httpx.RespondError(w, http.StatusInternalServerError, "error interno")
	}
}
