package query

import (
	"context"
	"errors"
	"testing"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	. "github.com/smartystreets/goconvey/convey"
)

func testMetadata() *ees.DatasetMetadata {
	return &ees.DatasetMetadata{
		Indicators: []ees.Indicator{{ID: "IND1", Label: "Pupil count"}},
		Filters: []ees.FilterDimension{
			{ID: "gender", Label: "Gender", Options: []ees.Option{{ID: "M", Label: "Male"}, {ID: "F", Label: "Female"}}},
		},
		GeographicLevels: []ees.Option{{Code: "NAT", Label: "National"}},
		TimePeriods: []ees.TimePeriod{
			{Code: "AY", Period: "2024/2025", Label: "2024/25"},
			{Code: "CY", Period: "2023", Label: "2023"},
		},
	}
}

func TestResolveTimePeriods(t *testing.T) {
	Convey("Given dataset metadata listing time periods", t, func() {
		meta := testMetadata()

		Convey("Known periods are paired with their metadata code", func() {
			refs := ResolveTimePeriods(meta, []string{"2023", "2024/2025"}, DefaultTimePeriodCode)
			So(refs, ShouldResemble, []ees.TimePeriodRef{
				{Code: "CY", Period: "2023"},
				{Code: "AY", Period: "2024/2025"},
			})
		})

		Convey("Unknown periods are paired with the fallback code", func() {
			refs := ResolveTimePeriods(meta, []string{"1999/2000"}, "FY")
			So(refs, ShouldResemble, []ees.TimePeriodRef{{Code: "FY", Period: "1999/2000"}})
		})
	})
}

func TestFetcher(t *testing.T) {
	ctx := context.Background()
	c := NewCriteria("ds", "IND1", []string{"NAT"}, []string{"2024/2025", "2030/2031"}, map[string]Filter{"gender": In("M")})

	Convey("Given a fetcher with metadata available", t, func() {
		metadata := &MetadataClientMock{
			GetMetadataFunc: func(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
				return testMetadata(), nil
			},
		}
		cli := &QueryClientMock{
			QueryFunc: func(ctx context.Context, datasetID string, q ees.QueryRequest) (*ees.ResultPage, error) {
				return &ees.ResultPage{Page: q.Page}, nil
			},
		}
		f := NewFetcher(cli, metadata, "")

		Convey("When the request body is built", func() {
			req, err := f.Request(ctx, c)

			Convey("Then it asks for page 1 of the indicator in debug mode", func() {
				So(err, ShouldBeNil)
				So(req.Indicators, ShouldResemble, []string{"IND1"})
				So(req.Debug, ShouldBeTrue)
				So(req.Page, ShouldEqual, 1)
				So(req.Criteria.GeographicLevels.In, ShouldResemble, []string{"NAT"})
				So(req.Criteria.TimePeriods.In, ShouldResemble, []ees.TimePeriodRef{
					{Code: "AY", Period: "2024/2025"},
					{Code: DefaultTimePeriodCode, Period: "2030/2031"},
				})
			})
		})

		Convey("When a page is fetched", func() {
			res, err := f.FetchPage(ctx, c, 4)

			Convey("Then the query is posted with the page number", func() {
				So(err, ShouldBeNil)
				So(res.Page, ShouldEqual, 4)
				So(cli.QueryCalls(), ShouldHaveLength, 1)
				So(cli.QueryCalls()[0].DatasetID, ShouldEqual, "ds")
				So(cli.QueryCalls()[0].Q.Page, ShouldEqual, 4)
			})
		})
	})

	Convey("Given metadata that cannot be fetched", t, func() {
		upstream := &ees.UpstreamError{Method: "GET", URI: "/meta", StatusCode: 404}
		metadata := &MetadataClientMock{
			GetMetadataFunc: func(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
				return nil, upstream
			},
		}
		cli := &QueryClientMock{}
		f := NewFetcher(cli, metadata, "")

		Convey("Then the error is propagated and no query is made", func() {
			_, err := f.FetchPage(ctx, c, 1)
			var upstreamErr *ees.UpstreamError
			So(errors.As(err, &upstreamErr), ShouldBeTrue)
			So(upstreamErr.Code(), ShouldEqual, 404)
			So(cli.QueryCalls(), ShouldBeEmpty)
		})
	})
}

func TestMetadataAccessor(t *testing.T) {
	ctx := context.Background()

	Convey("Given a metadata accessor", t, func() {
		cli := &MetadataClientMock{
			GetMetadataFunc: func(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
				if datasetID == "missing" {
					return nil, &ees.UpstreamError{Method: "GET", URI: "/data-sets/missing/meta", StatusCode: 404}
				}
				return testMetadata(), nil
			},
		}
		accessor, err := NewMetadataAccessor(cli, 2, nil)
		So(err, ShouldBeNil)

		Convey("When the same dataset is requested twice", func() {
			first, err1 := accessor.GetMetadata(ctx, "ds")
			second, err2 := accessor.GetMetadata(ctx, "ds")

			Convey("Then the api is called once and the value reused", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldEqual, first)
				So(cli.GetMetadataCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When more datasets than the capacity are requested", func() {
			for _, id := range []string{"a", "b", "c", "a"} {
				_, err := accessor.GetMetadata(ctx, id)
				So(err, ShouldBeNil)
			}

			Convey("Then the least recently used is refetched", func() {
				So(cli.GetMetadataCalls(), ShouldHaveLength, 4)
			})
		})

		Convey("When the first of two concurrent callers gives up", func() {
			started := make(chan struct{})
			release := make(chan struct{})
			var fetchErr error
			cli.GetMetadataFunc = func(ctx context.Context, datasetID string) (*ees.DatasetMetadata, error) {
				close(started)
				<-release
				fetchErr = ctx.Err()
				return testMetadata(), nil
			}

			firstCtx, cancel := context.WithCancel(ctx)
			firstErr := make(chan error, 1)
			go func() {
				_, err := accessor.GetMetadata(firstCtx, "ds")
				firstErr <- err
			}()
			<-started

			second := make(chan error, 1)
			go func() {
				meta, err := accessor.GetMetadata(ctx, "ds")
				if err == nil && len(meta.Indicators) == 0 {
					err = errors.New("empty metadata")
				}
				second <- err
			}()

			cancel()
			So(<-firstErr, ShouldEqual, context.Canceled)
			close(release)

			Convey("Then the shared fetch completes for the other caller", func() {
				So(<-second, ShouldBeNil)
				So(fetchErr, ShouldBeNil)
				So(cli.GetMetadataCalls(), ShouldHaveLength, 1)
			})
		})

		Convey("When an unknown dataset is requested", func() {
			meta, err := accessor.GetMetadata(ctx, "missing")

			Convey("Then the upstream error is returned and nothing cached", func() {
				So(meta, ShouldBeNil)
				var upstreamErr *ees.UpstreamError
				So(errors.As(err, &upstreamErr), ShouldBeTrue)
				So(upstreamErr.StatusCode, ShouldEqual, 404)

				_, err = accessor.GetMetadata(ctx, "missing")
				So(err, ShouldNotBeNil)
				So(cli.GetMetadataCalls(), ShouldHaveLength, 2)
			})
		})
	})

	Convey("A capacity below one is rejected", t, func() {
		_, err := NewMetadataAccessor(&MetadataClientMock{}, 0, nil)
		So(err, ShouldNotBeNil)
	})
}
