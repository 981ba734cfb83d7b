package query

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func pageOf(total int, records ...string) *ees.ResultPage {
	res := &ees.ResultPage{Paging: &ees.Paging{TotalPages: &total}}
	for _, r := range records {
		res.Records = append(res.Records, ees.RawRecord(r))
	}
	return res
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()
	c := NewCriteria("ds", "IND1", nil, []string{"2024"}, nil)

	Convey("Given a query spanning three pages", t, func() {
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				return pageOf(3, `{"page":`+strconv.Itoa(page)+`}`), nil
			},
		}
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "pages"})
		p := NewPaginator(pages, counter)

		Convey("When every page is fetched", func() {
			records, err := p.FetchAll(ctx, c)

			Convey("Then pages are requested once each, in order", func() {
				So(err, ShouldBeNil)
				calls := pages.FetchPageCalls()
				So(len(calls), ShouldEqual, 3)
				So(calls[0].Page, ShouldEqual, 1)
				So(calls[1].Page, ShouldEqual, 2)
				So(calls[2].Page, ShouldEqual, 3)
				So(testutil.ToFloat64(counter), ShouldEqual, float64(3))
			})

			Convey("Then records are concatenated in page order", func() {
				So(records, ShouldResemble, []ees.RawRecord{
					ees.RawRecord(`{"page":1}`), ees.RawRecord(`{"page":2}`), ees.RawRecord(`{"page":3}`),
				})
			})
		})
	})

	Convey("Given a response without paging metadata", t, func() {
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				return &ees.ResultPage{Records: []ees.RawRecord{ees.RawRecord(`{}`)}}, nil
			},
		}

		Convey("Then a single page is fetched", func() {
			records, err := NewPaginator(pages, nil).FetchAll(ctx, c)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(pages.FetchPageCalls(), ShouldHaveLength, 1)
		})
	})

	Convey("Given a total page count that changes between pages", t, func() {
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				if page == 1 {
					return pageOf(2), nil
				}
				return pageOf(1), nil
			},
		}

		Convey("Then the latest total is honoured", func() {
			_, err := NewPaginator(pages, nil).FetchAll(ctx, c)
			So(err, ShouldBeNil)
			So(pages.FetchPageCalls(), ShouldHaveLength, 2)
		})
	})

	Convey("Given the second page reports no results", t, func() {
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				res := pageOf(3, `{}`)
				if page == 2 {
					res.Warnings = []ees.Warning{{Code: NoResultsWarningCode, Message: "nothing"}}
				}
				return res, nil
			},
		}

		Convey("Then a NoDataError is returned and no further page requested", func() {
			records, err := NewPaginator(pages, nil).FetchAll(ctx, c)
			So(records, ShouldBeNil)
			var noData *NoDataError
			So(errors.As(err, &noData), ShouldBeTrue)
			So(noData.Page, ShouldEqual, 2)
			So(noData.DatasetID, ShouldEqual, "ds")
			So(noData.Code(), ShouldEqual, 404)
			So(pages.FetchPageCalls(), ShouldHaveLength, 2)
		})
	})

	Convey("Given a warning that is not a no results warning", t, func() {
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				res := pageOf(1, `{}`)
				res.Warnings = []ees.Warning{{Code: "SomethingElse"}}
				return res, nil
			},
		}

		Convey("Then it is ignored", func() {
			records, err := NewPaginator(pages, nil).FetchAll(ctx, c)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
		})
	})

	Convey("Given a page request that fails", t, func() {
		upstream := &ees.UpstreamError{Method: "POST", URI: "/query", StatusCode: 500}
		pages := &PageFetcherMock{
			FetchPageFunc: func(ctx context.Context, c Criteria, page int) (*ees.ResultPage, error) {
				if page == 2 {
					return nil, upstream
				}
				return pageOf(3), nil
			},
		}

		Convey("Then the error is returned as is and pagination stops", func() {
			_, err := NewPaginator(pages, nil).FetchAll(ctx, c)
			So(err, ShouldEqual, upstream)
			So(pages.FetchPageCalls(), ShouldHaveLength, 2)
		})
	})
}
