package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func TestServer_Handler(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name       string
		db         Pinger
		path       string
		wantStatus int
	}{
		{name: "liveness", db: fakePinger{}, path: "/healthz", wantStatus: http.StatusOK},
		{name: "ready", db: fakePinger{}, path: "/readyz", wantStatus: http.StatusOK},
		{name: "db down", db: fakePinger{err: errors.New("refused")}, path: "/readyz", wantStatus: http.StatusServiceUnavailable},
		{name: "no db", db: nil, path: "/readyz", wantStatus: http.StatusServiceUnavailable},
		{name: "metrics", db: fakePinger{}, path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(tt.db, 0, &logger)

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}
