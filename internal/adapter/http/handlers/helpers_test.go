package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"estimatepro/internal/adapter/http/middleware"
	"estimatepro/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var testBuilder = entities.Builder{ID: "b-1", Email: "owner@acme.test", BusinessName: "Acme Bathrooms", Role: entities.RoleBuilder}

func newTestRouter(b entities.Builder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if b.ID != "" {
		r.Use(func(c *gin.Context) {
			middleware.SetCurrentBuilder(c, b)
			c.Next()
		})
	}
	return r
}

func doRequest(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	return doRequest(r, method, path, rd, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}
