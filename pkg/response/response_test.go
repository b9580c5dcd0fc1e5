package response

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/pkg/errors"
)

func record(t *testing.T, fn func(c *gin.Context)) (int, Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestOK(t *testing.T) {
	code, resp := record(t, func(c *gin.Context) { OK(c, map[string]int{"n": 1}) })
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, MessageSuccess, resp.Message)
	assert.Equal(t, map[string]any{"n": float64(1)}, resp.Data)
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantResp Resp
	}{
		{
			name:     "http error",
			err:      errors.NewHTTPError(1003, "bad action", http.StatusBadRequest),
			wantCode: http.StatusBadRequest,
			wantResp: Resp{ErrorCode: 1003, Message: "bad action"},
		},
		{
			name:     "validation error",
			err:      errors.NewValidationError(ValidationErrorCode, "alertId", "is required"),
			wantCode: http.StatusBadRequest,
			wantResp: Resp{ErrorCode: ValidationErrorCode, Message: "alertId: is required"},
		},
		{
			name:     "wrapped upstream error",
			err:      fmt.Errorf("list: %w", errors.NewRequestError(http.MethodGet, "/api/v1/alerts", 503, nil)),
			wantCode: http.StatusBadGateway,
			wantResp: Resp{ErrorCode: UpstreamErrorCode, Message: "GET /api/v1/alerts returned status 503"},
		},
		{
			name:     "unknown",
			err:      stderrors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantResp: Resp{ErrorCode: InternalServerErrorCode, Message: DefaultErrorMessage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := record(t, func(c *gin.Context) { Error(c, tt.err) })
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantResp, resp)
		})
	}
}

func TestErrorWithMapMatchesWrapped(t *testing.T) {
	sentinel := stderrors.New("read failed")
	eMap := ErrorMapping{sentinel: errors.NewHTTPError(1002, "could not mark read", http.StatusBadGateway)}

	code, resp := record(t, func(c *gin.Context) { ErrorWithMap(c, fmt.Errorf("x: %w", sentinel), eMap) })
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, 1002, resp.ErrorCode)
}

func TestPanicError(t *testing.T) {
	code, resp := record(t, func(c *gin.Context) { PanicError(c, "nil map") })
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, DefaultErrorMessage, resp.Message)
}
