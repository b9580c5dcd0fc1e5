package httpserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"notification-client/pkg/response"
)

func (srv *HTTPServer) getToast(c *gin.Context) {
	t, ok := srv.coord.Toasts().Current()
	if !ok {
		response.OK(c, nil)
		return
	}
	response.OK(c, t)
}

func (srv *HTTPServer) dismissToast(c *gin.Context) {
	seq, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, errWrongParam)
		return
	}
	if !srv.coord.Toasts().Dismiss(seq) {
		response.Error(c, errToastNotFound)
		return
	}
	response.OK(c, nil)
}
