package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("posts the notification payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/notificar", r.URL.Path)

			var payload struct {
				Kind      string `json:"tipo"`
				Message   string `json:"mensaje"`
				Recipient string `json:"destinatario"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "pago", payload.Kind)
			assert.Equal(t, "ana@example.com", payload.Recipient)

			json.NewEncoder(w).Encode(map[string]string{"estado": "ok"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second)
		err := client.Send(context.Background(), "pago", "hola", "ana@example.com")
		assert.NoError(t, err)
	})

	t.Run("non-2xx becomes an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second)
		err := client.Send(context.Background(), "pago", "hola", "ana@example.com")
		assert.Error(t, err)
	})
}
