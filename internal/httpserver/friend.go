package httpserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"notification-client/internal/friend"
	"notification-client/pkg/response"
)

func (srv *HTTPServer) respondFriendRequest(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		response.Error(c, errWrongParam)
		return
	}
	var req friendRequestReq
	if err := bindJSON(c, &req, "alertId"); err != nil {
		response.Error(c, err)
		return
	}

	action := friend.Action(c.Param("action"))
	if err := srv.coord.Friends().HandleFriendRequest(ctx, requestID, req.AlertID, action); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	resp := friendRequestResp{RequestID: requestID, Action: string(action)}
	if a, ok := srv.coord.Feed().Snapshot().Find(req.AlertID); ok {
		resp.ProcessedAction = a.ProcessedAction
	}
	response.OK(c, resp)
}
