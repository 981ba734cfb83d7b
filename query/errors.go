package query

import (
	"fmt"
	"net/http"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
)

// NoResultsWarningCode is the warning code the query endpoint uses to signal that
// no data matches the criteria
const NoResultsWarningCode = "NoResults"

// NoDataError is returned when the query endpoint explicitly reports no matching data
type NoDataError struct {
	DatasetID string
	Page      int
	Warnings  []ees.Warning
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("the query returned no data, dataset %s may not have this combination of criteria: %v", e.DatasetID, e.Warnings)
}

// Code returns the HTTP status used when this error reaches a handler
func (e *NoDataError) Code() int {
	return http.StatusNotFound
}

// EmptyResultError is returned when no rows remain after normalisation and filtering
type EmptyResultError struct {
	DatasetID   string
	IndicatorID string
	Reason      string
}

func (e *EmptyResultError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "No data found for this combination."
}

// Code returns the HTTP status used when this error reaches a handler
func (e *EmptyResultError) Code() int {
	return http.StatusNotFound
}

// ValidationError is returned for criteria that cannot be queried
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Code returns the HTTP status used when this error reaches a handler
func (e *ValidationError) Code() int {
	return http.StatusBadRequest
}
