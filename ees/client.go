package ees

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	dphttp "github.com/ONSdigital/dp-net/http"
	"github.com/ONSdigital/log.go/log"
	"github.com/pkg/errors"
)

const service = "explore-education-statistics-api"

// maxErrorBody caps how much of a failed response body is kept on an UpstreamError
const maxErrorBody = 512

// Doer is the subset of dphttp.Clienter used by the client
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client is a client for the explore education statistics public API
type Client struct {
	cli Doer
	url string
}

// New creates a client for the API at apiURL. Every call is bounded by timeout
// and is never retried.
func New(apiURL string, timeout time.Duration) *Client {
	cli := dphttp.NewClient()
	cli.SetTimeout(timeout)
	cli.SetMaxRetries(0)
	return NewWithDoer(apiURL, cli)
}

// NewWithDoer creates a client using the provided http doer
func NewWithDoer(apiURL string, cli Doer) *Client {
	return &Client{
		cli: cli,
		url: strings.TrimRight(apiURL, "/"),
	}
}

// GetMetadata retrieves the metadata document of a dataset
func (c *Client) GetMetadata(ctx context.Context, datasetID string) (*DatasetMetadata, error) {
	uri := fmt.Sprintf("%s/data-sets/%s/meta", c.url, url.PathEscape(datasetID))

	b, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var m DatasetMetadata
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, &UpstreamError{Method: http.MethodGet, URI: uri, StatusCode: http.StatusOK, Err: errors.Wrap(err, "failed to unmarshal metadata")}
	}
	return &m, nil
}

// Query posts a query request for one page of a dataset
func (c *Client) Query(ctx context.Context, datasetID string, q QueryRequest) (*ResultPage, error) {
	uri := fmt.Sprintf("%s/data-sets/%s/query", c.url, url.PathEscape(datasetID))

	body, err := json.Marshal(q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal query request")
	}

	b, err := c.do(ctx, http.MethodPost, uri, body)
	if err != nil {
		return nil, err
	}

	var resp queryResponse
	if err = json.Unmarshal(b, &resp); err != nil {
		return nil, &UpstreamError{Method: http.MethodPost, URI: uri, StatusCode: http.StatusOK, Err: errors.Wrap(err, "failed to unmarshal query response")}
	}
	return resp.toPage(q.Page), nil
}

func (c *Client) do(ctx context.Context, method, uri string, body []byte) ([]byte, error) {
	logData := log.Data{"service": service, "method": method, "uri": uri}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, uri, r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Event(ctx, "calling statistics api", log.INFO, logData)
	resp, err := c.cli.Do(ctx, req)
	if err != nil {
		log.Event(ctx, "statistics api call failed", log.ERROR, log.Error(err), logData)
		return nil, &UpstreamError{Method: method, URI: uri, Err: err}
	}
	if resp == nil {
		return nil, &UpstreamError{Method: method, URI: uri, Err: errors.New("no response received")}
	}
	defer closeResponseBody(ctx, resp)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Method: method, URI: uri, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "failed to read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logData["status"] = resp.StatusCode
		log.Event(ctx, "statistics api returned unexpected status", log.ERROR, logData)
		if len(b) > maxErrorBody {
			b = b[:maxErrorBody]
		}
		return nil, &UpstreamError{Method: method, URI: uri, StatusCode: resp.StatusCode, Body: string(b)}
	}

	return b, nil
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Event(ctx, "error closing http response body", log.ERROR, log.Error(err))
		}
	}
}
