package query

import (
	"context"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Client is the statistics api as used by the query service
type Client interface {
	MetadataClient
	QueryClient
}

// Config holds the tunables of a query service
type Config struct {
	MetadataCacheSize      int
	QueryCacheSize         int
	FallbackTimePeriodCode string
	// StrictFilters turns a filter on a dimension missing from the result into a
	// ValidationError instead of ignoring it
	StrictFilters bool
	// Registerer receives the service metrics; nil disables them
	Registerer prometheus.Registerer
}

// Service answers dataset queries with normalised, filtered, chronological tables
type Service struct {
	metadata      *MetadataAccessor
	paginator     *Paginator
	results       *ResultCache
	strictFilters bool
	group         singleflight.Group
	queries       *prometheus.CounterVec
}

// New creates a query service backed by cli
func New(cli Client, cfg Config) (*Service, error) {
	metadata, err := NewMetadataAccessor(cli, cfg.MetadataCacheSize, cfg.Registerer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create metadata cache")
	}
	results, err := NewResultCache(cfg.QueryCacheSize, cfg.Registerer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create query cache")
	}

	var pages prometheus.Counter
	var queries *prometheus.CounterVec
	if cfg.Registerer != nil {
		pages = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ees_dashboard",
			Subsystem: "upstream",
			Name:      "pages_fetched_total",
			Help:      "Total number of query result pages fetched from the statistics api",
		})
		queries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ees_dashboard",
			Subsystem: "query",
			Name:      "requests_total",
			Help:      "Total number of dataset queries by outcome",
		}, []string{"outcome"})
		for _, c := range []prometheus.Collector{pages, queries} {
			if err = cfg.Registerer.Register(c); err != nil {
				return nil, errors.Wrap(err, "failed to register query metrics")
			}
		}
	}

	return &Service{
		metadata:      metadata,
		paginator:     NewPaginator(NewFetcher(cli, metadata, cfg.FallbackTimePeriodCode), pages),
		results:       results,
		strictFilters: cfg.StrictFilters,
		queries:       queries,
	}, nil
}

// GetMetadata returns the cached metadata of a dataset
func (s *Service) GetMetadata(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
	return s.metadata.GetMetadata(ctx, datasetID)
}

// QueryDataset returns the table of indicatorID values for the given geographic
// levels and periods, restricted by filters
func (s *Service) QueryDataset(ctx context.Context, datasetID, indicatorID string, geoLevels, periods []string, filters map[string]Filter) (*Table, error) {
	return s.Query(ctx, NewCriteria(datasetID, indicatorID, geoLevels, periods, filters))
}

// Query runs c, answering from the result cache when an equivalent query has
// already been made. Concurrent equivalent queries share a single upstream run.
// Every returned table is the caller's own copy.
func (s *Service) Query(ctx context.Context, c Criteria) (*Table, error) {
	if err := c.Validate(); err != nil {
		s.record("invalid")
		return nil, err
	}

	if t, ok := s.results.Get(c); ok {
		s.record("cache_hit")
		return nonEmpty(c, t)
	}

	// the shared run outlives any one caller; upstream calls are still bounded
	// by the client timeout
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(c.Key(), func() (interface{}, error) {
		if t, ok := s.results.Get(c); ok {
			return t, nil
		}
		t, err := s.run(shared, c)
		if err != nil {
			return nil, err
		}
		s.results.Put(c, t)
		return t, nil
	})

	select {
	case <-ctx.Done():
		s.record("cancelled")
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.record("error")
			return nil, res.Err
		}
		s.record("cache_miss")
		return nonEmpty(c, res.Val.(*Table).Copy())
	}
}

func (s *Service) run(ctx context.Context, c Criteria) (*Table, error) {
	records, err := s.paginator.FetchAll(ctx, c)
	if err != nil {
		return nil, err
	}

	t := Normalize(records, c.IndicatorID)
	if s.strictFilters {
		if err = ValidateFilters(t, c.Filters); err != nil {
			return nil, err
		}
	}
	t = ApplyFilters(t, c.Filters)
	return ToChronological(t), nil
}

func (s *Service) record(outcome string) {
	if s.queries != nil {
		s.queries.WithLabelValues(outcome).Inc()
	}
}

func nonEmpty(c Criteria, t *Table) (*Table, error) {
	if t.Len() == 0 {
		return nil, &EmptyResultError{DatasetID: c.DatasetID, IndicatorID: c.IndicatorID}
	}
	return t, nil
}
