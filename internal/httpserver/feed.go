package httpserver

import (
	"github.com/gin-gonic/gin"

	"notification-client/pkg/response"
)

func (srv *HTTPServer) feedResp() feedResp {
	return newFeedResp(srv.coord.Feed().Snapshot(), srv.coord.Reads().Unread())
}

func (srv *HTTPServer) getFeed(c *gin.Context) {
	response.OK(c, srv.feedResp())
}

func (srv *HTTPServer) loadMore(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.coord.Feed().LoadMore(ctx); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.loadMore: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, srv.feedResp())
}

func (srv *HTTPServer) setVisibility(c *gin.Context) {
	ctx := c.Request.Context()

	var req visibilityReq
	if err := bindJSON(c, &req, "visible"); err != nil {
		response.Error(c, err)
		return
	}

	if err := srv.coord.Reads().SetVisible(ctx, *req.Visible); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.setVisibility: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, srv.feedResp())
}

func (srv *HTTPServer) readAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	var req readReq
	if err := bindJSON(c, &req, "alertIds"); err != nil {
		response.Error(c, err)
		return
	}

	if err := srv.coord.Reads().ReadAlerts(ctx, req.AlertIDs); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.readAlerts: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, srv.feedResp())
}
