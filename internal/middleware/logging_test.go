package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/proposedesk/internal/middleware"
)

type recorder struct {
	methods  []string
	statuses []int
}

func (r *recorder) HTTPRequest(method string, status int) {
	r.methods = append(r.methods, method)
	r.statuses = append(r.statuses, status)
}

func TestRequestLogger(t *testing.T) {
	rec := &recorder{}
	handler := chimw.RequestID(middleware.RequestLogger(rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	for _, path := range []string{"/healthz", "/missing"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []string{http.MethodGet, http.MethodGet}, rec.methods)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, rec.statuses)
}
