package query

import (
	"context"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
)

// DefaultTimePeriodCode is paired with any requested period that the dataset
// metadata does not list
const DefaultTimePeriodCode = "AY"

// QueryClient posts query requests to the statistics api
type QueryClient interface {
	Query(ctx context.Context, datasetID string, q ees.QueryRequest) (*ees.ResultPage, error)
}

// MetadataGetter provides dataset metadata
type MetadataGetter interface {
	GetMetadata(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error)
}

// Fetcher fetches single pages of query results
type Fetcher struct {
	cli          QueryClient
	metadata     MetadataGetter
	fallbackCode string
}

// NewFetcher creates a page fetcher. An empty fallbackCode uses DefaultTimePeriodCode.
func NewFetcher(cli QueryClient, metadata MetadataGetter, fallbackCode string) *Fetcher {
	if fallbackCode == "" {
		fallbackCode = DefaultTimePeriodCode
	}
	return &Fetcher{cli: cli, metadata: metadata, fallbackCode: fallbackCode}
}

// Request builds the query request body for page 1 of c
func (f *Fetcher) Request(ctx context.Context, c Criteria) (ees.QueryRequest, error) {
	meta, err := f.metadata.GetMetadata(ctx, c.DatasetID)
	if err != nil {
		return ees.QueryRequest{}, err
	}

	return ees.QueryRequest{
		Criteria: ees.QueryCriteria{
			GeographicLevels: ees.InCondition[string]{In: append([]string{}, c.GeographicLevels...)},
			TimePeriods:      ees.InCondition[ees.TimePeriodRef]{In: ResolveTimePeriods(meta, c.TimePeriods, f.fallbackCode)},
		},
		Indicators: []string{c.IndicatorID},
		Debug:      true,
		Page:       1,
	}, nil
}

// FetchPage fetches one page of results for c
func (f *Fetcher) FetchPage(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
	req, err := f.Request(ctx, c)
	if err != nil {
		return nil, err
	}
	req.Page = page
	return f.cli.Query(ctx, c.DatasetID, req)
}

// ResolveTimePeriods pairs every period label with the code the metadata lists
// for it. The api is driven by codes rather than labels; unknown labels are sent
// with fallbackCode.
func ResolveTimePeriods(meta *ees.DatasetMetadata, periods []string, fallbackCode string) []ees.TimePeriodRef {
	refs := make([]ees.TimePeriodRef, 0, len(periods))
	for _, p := range periods {
		if tp, ok := meta.TimePeriod(p); ok {
			refs = append(refs, ees.TimePeriodRef{Code: tp.Code, Period: tp.Period})
			continue
		}
		refs = append(refs, ees.TimePeriodRef{Code: fallbackCode, Period: p})
	}
	return refs
}
