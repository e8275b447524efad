package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating a manager with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test")
				So(manager.subsystem, ShouldEqual, "unit")
				So(manager.refreshInterval, ShouldEqual, 5*time.Second)
				So(manager.customLabels["env"], ShouldEqual, "test")
			})

			Convey("And metrics should be registered on the custom registry", func() {
				manager.catalogUniversities.Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_unit_catalog_universities" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When passing empty values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithRefreshInterval(0),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "campus")
				So(manager.refreshInterval, ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording catalog and filter metrics", func() {
			UpdateCatalogSize(42)
			RecordFilter("", 7, 1.5)
			RecordFilter("name-asc", 3, 0.5)

			Convey("Then the values should be observable", func() {
				So(testutil.ToFloat64(globalManager.catalogUniversities), ShouldEqual, 42)
				So(testutil.ToFloat64(globalManager.filterRequests.WithLabelValues("default")), ShouldBeGreaterThanOrEqualTo, 1)
				So(testutil.ToFloat64(globalManager.filterRequests.WithLabelValues("name-asc")), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When recording comparison operations", func() {
			before := testutil.ToFloat64(globalManager.compareOperations.WithLabelValues("add", "limit_reached"))
			RecordCompareOperation("add", "limit_reached")
			ObserveSelectionSize(4)

			Convey("Then the counter should increase by one", func() {
				after := testutil.ToFloat64(globalManager.compareOperations.WithLabelValues("add", "limit_reached"))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When recording the remaining metric families", func() {
			So(func() {
				RecordScore(80)
				RecordRevealGrowth("applied")
				RecordStoreOperation("memory", "set")
				RecordStoreError("sqlite", "get")
				UpdateActionQueueSize(3)
				RecordActionRejected()
				RecordActionLatency(0.2)
				UpdateSessionsActive(2)
				RecordHTTPRequest("universities", "GET", "200")
				RecordHTTPRequestDuration("universities", "GET", "200", 4)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("compare", "POST", "client_error")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("When gathering the registry", func() {
			RecordScore(40)
			families, err := GetRegistry().Gather()

			Convey("Then campus metrics should be exported", func() {
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				joined := strings.Join(names, ",")
				So(joined, ShouldContainSubstring, "campus_core_score_values")
				So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}
