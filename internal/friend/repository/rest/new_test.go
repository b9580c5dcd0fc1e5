package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/internal/friend"
	pkgErrors "notification-client/pkg/errors"
	pkgRest "notification-client/pkg/rest"
)

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotID, gotAction string
	r.POST("/api/v1/friends/friend-requests/:id/:action", func(c *gin.Context) {
		gotID, gotAction = c.Param("id"), c.Param("action")
		if gotID == "404" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := pkgRest.New(srv.URL, srv.Client())
	require.NoError(t, err)
	repo := New(client)
	ctx := context.Background()

	require.NoError(t, repo.Respond(ctx, 5, friend.ActionAccept))
	assert.Equal(t, "5", gotID)
	assert.Equal(t, "accept", gotAction)

	err = repo.Respond(ctx, 404, friend.ActionReject)
	assert.True(t, pkgErrors.IsStatus(err, http.StatusNotFound))

	assert.ErrorIs(t, repo.Respond(ctx, 1, friend.Action("maybe")), friend.ErrInvalidAction)
}
