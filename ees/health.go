package ees

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

// Messages reported by the health checker
const (
	MsgHealthy   = "statistics api is reachable"
	MsgUnhealthy = "statistics api is unreachable or returning errors"
)

// Checker reports whether the statistics api answers a minimal publications request
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	uri := fmt.Sprintf("%s/publications?page=1&pageSize=1", c.url)

	if _, err := c.do(ctx, http.MethodGet, uri, nil); err != nil {
		code := 0
		if upstreamErr, ok := err.(*UpstreamError); ok {
			code = upstreamErr.StatusCode
		}
		return state.Update(healthcheck.StatusCritical, MsgUnhealthy, code)
	}
	return state.Update(healthcheck.StatusOK, MsgHealthy, http.StatusOK)
}
