package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/swamyslabs/storefront/internal/api/middleware"
)

// CreateTestRequest builds a request with a discard logger in context, so
// handler tests do not spray log output.
func CreateTestRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.ContextWithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}
