package query

import (
	"context"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/cache"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

//go:generate moq -out mocks_query.go . MetadataClient QueryClient PageFetcher

// MetadataClient retrieves dataset metadata from the statistics api
type MetadataClient interface {
	GetMetadata(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error)
}

// MetadataAccessor memoizes dataset metadata in a bounded least recently used cache
type MetadataAccessor struct {
	cli   MetadataClient
	cache *cache.LRU[*ees.DatasetMetadata]
	group singleflight.Group
}

// NewMetadataAccessor creates an accessor caching at most capacity datasets
func NewMetadataAccessor(cli MetadataClient, capacity int, reg prometheus.Registerer) (*MetadataAccessor, error) {
	c, err := cache.NewLRU[*ees.DatasetMetadata](capacity, cache.WithMetrics[*ees.DatasetMetadata](reg, "metadata"))
	if err != nil {
		return nil, err
	}
	return &MetadataAccessor{cli: cli, cache: c}, nil
}

// GetMetadata returns the metadata of a dataset, fetching it on first use. The
// returned value is shared and must not be modified. A caller giving up does not
// cancel a fetch other callers are waiting on.
func (m *MetadataAccessor) GetMetadata(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
	if meta, ok := m.cache.Get(datasetID); ok {
		return meta, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := m.group.DoChan(datasetID, func() (interface{}, error) {
		if meta, ok := m.cache.Get(datasetID); ok {
			return meta, nil
		}
		meta, err := m.cli.GetMetadata(shared, datasetID)
		if err != nil {
			return nil, err
		}
		m.cache.Put(datasetID, meta)
		return meta, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*ees.DatasetMetadata), nil
	}
}
