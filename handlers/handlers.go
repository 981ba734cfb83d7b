package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/chart"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/config"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/mapper"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/models"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/query"
	"github.com/ONSdigital/log.go/log"
	"github.com/gorilla/mux"
)

//go:generate moq -out mocks_handlers.go . RenderClient QueryService

// Messages returned when the chart controls are incomplete
const (
	MissingIndicatorMessage = "Please select an indicator and at least one time period."
	MissingFilterMessage    = "Please select a filter dimension and at least one value."
)

// RenderClient is an interface with methods for require for rendering a template
type RenderClient interface {
	Do(string, []byte) ([]byte, error)
}

// QueryService is an interface with the dataset query methods used by the handlers
type QueryService interface {
	GetMetadata(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error)
	Query(ctx context.Context, c query.Criteria) (*query.Table, error)
}

// ClientError is an interface that can be used to retrieve the status code if a client has errored
type ClientError interface {
	error
	Code() int
}

type datasetNotFoundError struct {
	key string
}

func (e *datasetNotFoundError) Error() string { return "dataset not found: " + e.key }
func (e *datasetNotFoundError) Code() int     { return http.StatusNotFound }

type filterNotFoundError struct {
	dimension string
}

func (e *filterNotFoundError) Error() string { return "filter dimension not found: " + e.dimension }
func (e *filterNotFoundError) Code() int     { return http.StatusNotFound }

func statusCode(err error) int {
	var cliErr ClientError
	if errors.As(err, &cliErr) {
		if code := cliErr.Code(); code >= http.StatusBadRequest && code < 600 {
			return code
		}
	}
	return http.StatusInternalServerError
}

func setStatusCode(req *http.Request, w http.ResponseWriter, err error) {
	status := statusCode(err)
	log.Event(req.Context(), "setting response status", log.ERROR, log.Error(err), log.Data{"status": status})
	w.WriteHeader(status)
}

// errorMessage returns the message shown to dashboard users for err
func errorMessage(err error) string {
	var (
		validationErr *query.ValidationError
		emptyErr      *query.EmptyResultError
		noDataErr     *query.NoDataError
		upstreamErr   *ees.UpstreamError
		cliErr        ClientError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &emptyErr):
		return emptyErr.Error()
	case errors.As(err, &noDataErr):
		return (&query.EmptyResultError{}).Error()
	case errors.As(err, &upstreamErr):
		if upstreamErr.Code() == http.StatusNotFound {
			return "The requested dataset could not be found."
		}
		return "The statistics service could not be reached, please try again later."
	case errors.As(err, &cliErr):
		return cliErr.Error()
	}
	return "Internal server error"
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Event(ctx, "error marshalling response body", log.ERROR, log.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		log.Event(ctx, "error writing response body", log.ERROR, log.Error(err))
	}
}

func writeJSONError(req *http.Request, w http.ResponseWriter, err error, logData log.Data) {
	status := statusCode(err)
	logData["status"] = status
	if status >= http.StatusInternalServerError {
		log.Event(req.Context(), "request failed", log.ERROR, log.Error(err), logData)
	} else {
		log.Event(req.Context(), "request rejected", log.WARN, log.Error(err), logData)
	}
	writeJSON(req.Context(), w, status, models.ErrorResponse{Status: status, Message: errorMessage(err)})
}

func datasetID(cfg *config.Config, key string) (string, error) {
	id, ok := cfg.Datasets[key]
	if !ok {
		return "", &datasetNotFoundError{key: key}
	}
	return id, nil
}

// selection reads the chart controls from the query string
func selection(req *http.Request) models.Selection {
	q := req.URL.Query()
	return models.Selection{
		Indicator: q.Get("indicator"),
		Periods:   nonEmpty(q["period"]),
		Dimension: q.Get("dimension"),
		Values:    nonEmpty(q["value"]),
	}
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// criteria builds the query for a selection. The filter is optional unless
// requireFilter is set.
func criteria(cfg *config.Config, id string, s models.Selection, requireFilter bool) (query.Criteria, error) {
	if s.Indicator == "" || len(s.Periods) == 0 {
		return query.Criteria{}, &query.ValidationError{Field: "selection", Message: MissingIndicatorMessage}
	}
	if requireFilter && (s.Dimension == "" || len(s.Values) == 0) {
		return query.Criteria{}, &query.ValidationError{Field: "selection", Message: MissingFilterMessage}
	}

	var filters map[string]query.Filter
	if s.Dimension != "" && len(s.Values) > 0 {
		filters = map[string]query.Filter{s.Dimension: filterFor(s.Values)}
	}
	return query.NewCriteria(id, s.Indicator, cfg.DefaultGeographicLevels, s.Periods, filters), nil
}

// filterFor selects a single value with eq and several with in
func filterFor(values []string) query.Filter {
	if len(values) == 1 {
		return query.Eq(values[0])
	}
	return query.In(values...)
}

// HomepageRender lists the configured datasets and passes them to the renderer
func HomepageRender(rend RenderClient, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		page := mapper.Homepage(cfg.Datasets, cfg, cfg.TaxonomyDomain)

		templateJSON, err := json.Marshal(page)
		if err != nil {
			log.Event(ctx, "error marshaling homepage data", log.ERROR, log.Error(err))
			setStatusCode(req, w, err)
			return
		}
		templateHTML, err := rend.Do("ees-dashboard-homepage", templateJSON)
		if err != nil {
			log.Event(ctx, "error rendering homepage", log.ERROR, log.Error(err))
			setStatusCode(req, w, err)
			return
		}

		w.Write(templateHTML)
		return
	}
}

// DatasetPageRender gets the metadata of a dataset, maps it to the dashboard
// controls and passes it to the renderer
func DatasetPageRender(rend RenderClient, svc QueryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		key := mux.Vars(req)["datasetKey"]
		logData := log.Data{"dataset_key": key}

		id, err := datasetID(cfg, key)
		if err != nil {
			log.Event(ctx, "unknown dataset requested", log.WARN, logData)
			setStatusCode(req, w, err)
			return
		}
		logData["dataset_id"] = id

		meta, err := svc.GetMetadata(ctx, id)
		if err != nil {
			log.Event(ctx, "error getting dataset metadata", log.ERROR, log.Error(err), logData)
			setStatusCode(req, w, err)
			return
		}

		page := mapper.DatasetPage(key, id, cfg.DatasetTitle(key), meta, cfg.TaxonomyDomain)

		templateJSON, err := json.Marshal(page)
		if err != nil {
			log.Event(ctx, "error marshalling dataset page data to JSON", log.ERROR, log.Error(err), logData)
			setStatusCode(req, w, err)
			return
		}
		templateHTML, err := rend.Do("ees-dashboard-dataset", templateJSON)
		if err != nil {
			log.Event(ctx, "error getting HTML of dataset page", log.ERROR, log.Error(err), logData)
			setStatusCode(req, w, err)
			return
		}

		w.Write(templateHTML)
		return
	}
}

// FilterOptions returns the options of one filter dimension of a dataset
func FilterOptions(svc QueryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		vars := mux.Vars(req)
		key, dimension := vars["datasetKey"], vars["dimension"]
		logData := log.Data{"dataset_key": key, "dimension": dimension}

		id, err := datasetID(cfg, key)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		meta, err := svc.GetMetadata(ctx, id)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		resp, ok := mapper.FilterOptions(meta, dimension)
		if !ok {
			writeJSONError(req, w, &filterNotFoundError{dimension: dimension}, logData)
			return
		}

		writeJSON(ctx, w, http.StatusOK, resp)
	}
}

// ChartData queries a dataset for the selected indicator, periods and filter
// values and returns it prepared as one series per filter value
func ChartData(svc QueryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		key := mux.Vars(req)["datasetKey"]
		s := selection(req)
		logData := log.Data{"dataset_key": key, "selection": s}

		id, err := datasetID(cfg, key)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		c, err := criteria(cfg, id, s, true)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		meta, err := svc.GetMetadata(ctx, id)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		table, err := svc.Query(ctx, c)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		data, err := chart.Prepare(table, s.Indicator, s.Dimension)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}
		data.Describe(meta)

		if data.Warning != "" {
			logData["excluded"] = data.Excluded
			log.Event(ctx, "rows excluded from chart", log.WARN, logData)
		}

		writeJSON(ctx, w, http.StatusOK, data)
	}
}

// Table queries a dataset and returns the resulting table as JSON records
func Table(svc QueryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		key := mux.Vars(req)["datasetKey"]
		s := selection(req)
		logData := log.Data{"dataset_key": key, "selection": s}

		table, err := queryTable(ctx, svc, cfg, key, s)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		writeJSON(ctx, w, http.StatusOK, table)
	}
}

// ExportXLSX queries a dataset and returns the resulting table as a workbook
func ExportXLSX(svc QueryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		key := mux.Vars(req)["datasetKey"]
		s := selection(req)
		logData := log.Data{"dataset_key": key, "selection": s}

		table, err := queryTable(ctx, svc, cfg, key, s)
		if err != nil {
			writeJSONError(req, w, err, logData)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+key+`.xlsx"`)
		if err = writeWorkbook(w, table); err != nil {
			log.Event(ctx, "error writing workbook", log.ERROR, log.Error(err), logData)
			return
		}
	}
}

func queryTable(ctx context.Context, svc QueryService, cfg *config.Config, key string, s models.Selection) (*query.Table, error) {
	id, err := datasetID(cfg, key)
	if err != nil {
		return nil, err
	}
	c, err := criteria(cfg, id, s, false)
	if err != nil {
		return nil, err
	}
	return svc.Query(ctx, c)
}
