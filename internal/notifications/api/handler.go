package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vetstore-io/vetstore/internal/notifications/app"
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
	r.Post("/notificar", h.Notify)
	r.Post("/notificar/adjunto", h.NotifyWithAttachment)
}

type notifyRequest struct {
	Kind      string `json:"tipo"`
	Message   string `json:"mensaje"`
	Recipient string `json:"destinatario"`
}

type notifyAttachmentRequest struct {
	Recipient      string `json:"destinatario"`
	Kind           string `json:"tipo"`
	Message        string `json:"mensaje"`
	Attachment     string `json:"adjunto"`
	AttachmentName string `json:"nombreAdjunto"`
}

func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"detail": "cuerpo JSON inválido"})
		return
	}

	if err := h.svc.Notify(r.Context(), req.Kind, req.Message, req.Recipient); err != nil {
		h.respondErr(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{
		"estado":  "ok",
		"detalle": "Notificación enviada",
	})
}

func (h *Handler) NotifyWithAttachment(w http.ResponseWriter, r *http.Request) {
	var req notifyAttachmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{"detail": "cuerpo JSON inválido"})
		return
	}

	err := h.svc.NotifyWithAttachment(r.Context(), req.Kind, req.Message, req.Recipient,
		req.Attachment, req.AttachmentName)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondErr(w http.ResponseWriter, err error) {
	var deliveryErr *app.DeliveryError

	switch {
	case errors.Is(err, app.ErrInvalidInput):
		httpx.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "Destinatario y mensaje son obligatorios",
		})
	case errors.As(err, &deliveryErr):
		h.log.Error("mail delivery failed", slog.Any("err", deliveryErr.Err))
		httpx.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": deliveryErr.Error(),
		})
	default:
		h.log.Error("notification failed", slog.Any("err", err))
		httpx.RespondJSON(w, http.StatusInternalServerError, map[string]string{
			"detail": "error interno",
		})
	}
}
