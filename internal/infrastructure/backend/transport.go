package backend

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDTransport reenvía el id de la petición entrante (o uno nuevo) en X-Request-ID.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := RequestIDFrom(req.Context())
	if id == "" {
		id = uuid.NewString()
	}
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", id)
	return t.next.RoundTrip(req)
}

// unauthorizedTransport intercepta los 401 de peticiones autenticadas y avisa al hook.
type unauthorizedTransport struct {
	next           http.RoundTripper
	onUnauthorized func(ctx context.Context)
}

func (t *unauthorizedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && req.Header.Get("Authorization") != "" && t.onUnauthorized != nil {
		t.onUnauthorized(req.Context())
	}
	return resp, nil
}
