package httpserver

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"notification-client/internal/alert"
	"notification-client/internal/friend"
	"notification-client/pkg/errors"
	"notification-client/pkg/response"
)

const errCodeMissingField = 1002

var (
	errWrongBody       = errors.NewHTTPError(1000, "Wrong body", http.StatusBadRequest)
	errWrongParam      = errors.NewHTTPError(1001, "Wrong path parameter", http.StatusBadRequest)
	errFetchFailed     = errors.NewHTTPError(1010, "Could not load alerts", http.StatusBadGateway)
	errReadFailed      = errors.NewHTTPError(1011, "Could not mark alerts read", http.StatusBadGateway)
	errStaleResult     = errors.NewHTTPError(1012, "Feed was reset during the request", http.StatusConflict)
	errInvalidAction   = errors.NewHTTPError(1020, "Action must be accept or reject", http.StatusBadRequest)
	errRespondFailed   = errors.NewHTTPError(1021, "Could not answer friend request", http.StatusBadGateway)
	errToastNotFound   = errors.NewHTTPError(1030, "Toast is no longer shown", http.StatusNotFound)
	errMirrorUnhealthy = errors.NewHTTPError(1040, "Event mirror unavailable", http.StatusServiceUnavailable)
)

var errorMapping = response.ErrorMapping{
	alert.ErrFetchFailed:    errFetchFailed,
	alert.ErrReadFailed:     errReadFailed,
	alert.ErrStaleResult:    errStaleResult,
	friend.ErrInvalidAction: errInvalidAction,
	friend.ErrRespondFailed: errRespondFailed,
}

// bindJSON decodes the request body into obj. Undecodable bodies map to
// errWrongBody; a decoded body failing its binding rules is reported against field.
func bindJSON(c *gin.Context, obj any, field string) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) ||
		stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errWrongBody
	}
	return errors.NewValidationError(errCodeMissingField, field, "is required")
}
