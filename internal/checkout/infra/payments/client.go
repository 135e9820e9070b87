package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vetstore-io/vetstore/internal/checkout/app"
)

// DefaultTimeout bounds the session-creation call; there is no
// cancellation once the request is on the wire.
const DefaultTimeout = 30 * time.Second

// Client talks to the payment-session service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type cartEntry struct {
	Name     string `json:"nombre"`
	Price    int64  `json:"precio"`
	Quantity int64  `json:"cantidad"`
}

type sessionRequest struct {
	Cart       []cartEntry `json:"carrito"`
	BuyerEmail string      `json:"correo_usuario,omitempty"`
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CreateSession submits the priced cart and returns the hosted-checkout
// URL. Failures come back as *app.GatewayError: Status 0 for network
// faults, the upstream status otherwise.
func (c *Client) CreateSession(ctx context.Context, req app.PaymentRequest) (string, error) {
	payload := sessionRequest{
		Cart:       make([]cartEntry, 0, len(req.Items)),
		BuyerEmail: req.BuyerEmail,
	}
	for _, item := range req.Items {
		payload.Cart = append(payload.Cart, cartEntry{
			Name:     item.Name,
			Price:    item.UnitAmount,
			Quantity: item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/crear-sesion-pago", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &app.GatewayError{Status: 0, Detail: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &app.GatewayError{Status: 0, Detail: err.Error()}
	}

	var parsed sessionResponse
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(respBody))
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Error != "" {
			detail = parsed.Error
		}
		return "", &app.GatewayError{Status: resp.StatusCode, Detail: detail}
	}

	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &app.GatewayError{Status: resp.StatusCode, Detail: "malformed session response"}
	}
	if parsed.URL == "" {
		return "", &app.GatewayError{Status: resp.StatusCode, Detail: "session response carries no url"}
	}
	return parsed.URL, nil
}
