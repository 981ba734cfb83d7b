package ees

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	. "github.com/smartystreets/goconvey/convey"
)

func TestChecker(t *testing.T) {
	Convey("Given a healthy statistics api", t, func() {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"results": []}`))
		}))
		defer ts.Close()
		cli := NewWithDoer(ts.URL, httpDoer{ts.Client()})

		Convey("Then the check is OK", func() {
			state := healthcheck.NewCheckState(service)
			So(cli.Checker(ctx, state), ShouldBeNil)
			So(gotPath, ShouldEqual, "/publications")
			So(state.Status(), ShouldEqual, healthcheck.StatusOK)
			So(state.Message(), ShouldEqual, MsgHealthy)
			So(state.StatusCode(), ShouldEqual, http.StatusOK)
		})
	})

	Convey("Given a failing statistics api", t, func() {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()
		cli := NewWithDoer(ts.URL, httpDoer{ts.Client()})

		Convey("Then the check is critical", func() {
			state := healthcheck.NewCheckState(service)
			So(cli.Checker(ctx, state), ShouldBeNil)
			So(state.Status(), ShouldEqual, healthcheck.StatusCritical)
			So(state.Message(), ShouldEqual, MsgUnhealthy)
			So(state.StatusCode(), ShouldEqual, http.StatusServiceUnavailable)
		})
	})

	Convey("Given an unreachable statistics api", t, func() {
		cli := NewWithDoer("http://localhost:0", failingDoer{})

		Convey("Then the check is critical without a status code", func() {
			state := healthcheck.NewCheckState(service)
			So(cli.Checker(ctx, state), ShouldBeNil)
			So(state.Status(), ShouldEqual, healthcheck.StatusCritical)
			So(state.StatusCode(), ShouldEqual, 0)
		})
	})
}
