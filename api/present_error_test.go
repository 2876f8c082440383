package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/treedo/treedo-backend/models"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad parameter", errors.Wrap(models.BadParameterError, "newTitle is required"), http.StatusBadRequest},
		{"not found", errors.Wrap(models.NotFoundError, "list does not exist"), http.StatusNotFound},
		{"conflict", errors.Wrap(models.ConflictError, "root list"), http.StatusConflict},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "query"), http.StatusRequestTimeout},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			assert.True(t, presentError(c.Request.Context(), c, tt.err))
			assert.Equal(t, tt.status, w.Code)
			assert.Len(t, c.Errors, 1)
		})
	}

	t.Run("nil error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.False(t, presentError(c.Request.Context(), c, nil))
		assert.Empty(t, c.Errors)
	})
}
