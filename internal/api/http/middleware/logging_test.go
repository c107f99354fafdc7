package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/bookreview-server/internal/api/http/middleware"
	"github.com/dtroode/bookreview-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	logging := middleware.NewLogging(testutil.MakeNoopLogger())

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/BookReviews", nil)
	rec := httptest.NewRecorder()

	logging.Handle(next).ServeHTTP(rec, req)

	// The middleware observes but never alters the response.
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
