package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/campus/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.StoreDriver, convey.ShouldEqual, "memory")
			convey.So(cfg.DefaultLocale, convey.ShouldEqual, "ko")
			convey.So(cfg.RevealInitial, convey.ShouldEqual, 12)
			convey.So(cfg.RevealBatch, convey.ShouldEqual, 12)
			convey.So(cfg.RevealDelay(), convey.ShouldEqual, 500*time.Millisecond)
			convey.So(cfg.SessionTTL(), convey.ShouldEqual, 30*time.Minute)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("When the driver is unknown", func() {
			cfg.StoreDriver = "etcd"

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When reveal sizes are not positive", func() {
			cfg.RevealBatch = 0

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When redis is chosen without an address", func() {
			cfg.StoreDriver = "redis"
			cfg.RedisAddr = ""

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the catalog file does not exist", func() {
			cfg.CatalogPath = "/no/such/catalog.json"

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the locale is unsupported", func() {
			cfg.DefaultLocale = "fr"

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
