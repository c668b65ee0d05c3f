package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://shop.example.com"}

	tests := []struct {
		name       string
		method     string
		origin     string
		wantAllow  string
		wantStatus int
	}{
		{
			name:       "allowed origin gets grant",
			method:     http.MethodGet,
			origin:     "http://localhost:3000",
			wantAllow:  "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "disallowed origin gets no grant",
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantAllow:  "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no origin header",
			method:     http.MethodGet,
			origin:     "",
			wantAllow:  "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight from allowed origin",
			method:     http.MethodOptions,
			origin:     "https://shop.example.com",
			wantAllow:  "https://shop.example.com",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "preflight from disallowed origin short-circuits without grant",
			method:     http.MethodOptions,
			origin:     "https://evil.example.com",
			wantAllow:  "",
			wantStatus: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/products/all", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handlerReached := false
			err := CORS(allowed)(func(c echo.Context) error {
				handlerReached = true
				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Origin", rec.Header().Get("Vary"))
			if tt.method == http.MethodOptions {
				assert.False(t, handlerReached, "preflight must not reach the handler")
			}
		})
	}
}
