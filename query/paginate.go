package query

import (
	"context"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/prometheus/client_golang/prometheus"
)

// PageFetcher fetches one page of a query
type PageFetcher interface {
	FetchPage(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error)
}

// Paginator drives a PageFetcher across every page of a query
type Paginator struct {
	pages   PageFetcher
	fetched prometheus.Counter
}

// NewPaginator creates a paginator. fetched, if not nil, counts every page fetched.
func NewPaginator(pages PageFetcher, fetched prometheus.Counter) *Paginator {
	return &Paginator{pages: pages, fetched: fetched}
}

// FetchAll fetches pages strictly in order, starting at 1 and continuing until
// the total page count reported by the latest response is passed. A page warning
// that no results match aborts with a NoDataError before any further request.
func (p *Paginator) FetchAll(ctx context.Context, c Criteria) ([]ees.RawRecord, error) {
	var records []ees.RawRecord

	for page, totalPages := 1, 1; page <= totalPages; page++ {
		res, err := p.pages.FetchPage(ctx, c, page)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = &ees.ResultPage{Page: page}
		}
		if p.fetched != nil {
			p.fetched.Inc()
		}

		if res.HasWarning(NoResultsWarningCode) {
			return nil, &NoDataError{DatasetID: c.DatasetID, Page: page, Warnings: res.Warnings}
		}

		totalPages = res.TotalPages()
		records = append(records, res.Records...)
	}

	return records, nil
}
