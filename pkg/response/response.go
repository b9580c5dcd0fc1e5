package response

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"notification-client/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func parseError(err error) (int, Resp) {
	var (
		validationErr *errors.ValidationError
		httpErr       *errors.HTTPError
		requestErr    *errors.RequestError
	)
	switch {
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: validationErr.Code,
			Message:   validationErr.Error(),
		}
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	case stderrors.As(err, &requestErr):
		return http.StatusBadGateway, Resp{
			ErrorCode: UpstreamErrorCode,
			Message:   requestErr.Error(),
		}
	default:
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends error response (status + JSON from parseError).
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap sends the HTTPError mapped to the first sentinel err wraps,
// else falls back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// PanicError answers a recovered panic.
func PanicError(c *gin.Context, err any) {
	if errVal, ok := err.(error); ok {
		Error(c, errVal)
		return
	}
	Error(c, fmt.Errorf("%v", err))
}
