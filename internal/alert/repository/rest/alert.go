package rest

import (
	"context"
	"net/http"

	"notification-client/internal/alert"
	"notification-client/internal/model"
)

func (r *implRepository) List(ctx context.Context, opts alert.ListOptions) ([]model.Alert, error) {
	var resp listResponse
	if err := r.client.Do(ctx, http.MethodGet, buildListPath(opts), nil, &resp); err != nil {
		return nil, err
	}
	r.logger.Debugf(ctx, "internal.alert.repository.rest.List: page=%d count=%d resultCode=%s",
		opts.Page, len(resp.Data.Content), string(resp.ResultCode))
	return resp.Data.Content, nil
}

func (r *implRepository) MarkRead(ctx context.Context, ids []int64) error {
	return r.client.Do(ctx, http.MethodPatch, alertsPath, markReadRequest{AlertIDs: ids}, nil)
}
