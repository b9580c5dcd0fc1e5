package rest

import (
	"encoding/json"
	"fmt"

	"notification-client/internal/alert"
	"notification-client/internal/model"
)

const alertsPath = "/api/v1/alerts"

func buildListPath(opts alert.ListOptions) string {
	size := opts.Size
	if size <= 0 {
		size = alert.PageSize
	}
	return fmt.Sprintf("%s?page=%d&size=%d", alertsPath, opts.Page, size)
}

type listResponse struct {
	ResultCode json.RawMessage `json:"resultCode"`
	Data       struct {
		Content []model.Alert `json:"content"`
	} `json:"data"`
}

type markReadRequest struct {
	AlertIDs []int64 `json:"alertIds"`
}
