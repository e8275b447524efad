package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/campus/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ActionQueueSize, convey.ShouldEqual, 1024)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAMPUS_ADDR", ":8080")
			_ = os.Setenv("CAMPUS_STORE_DRIVER", "sqlite")
			_ = os.Setenv("CAMPUS_SQLITE_PATH", "/tmp/campus-test.db")
			_ = os.Setenv("CAMPUS_REVEAL_BATCH", "6")
			_ = os.Setenv("CAMPUS_DEFAULT_LOCALE", "en")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.StoreDriver, convey.ShouldEqual, "sqlite")
				convey.So(cfg.SQLitePath, convey.ShouldEqual, "/tmp/campus-test.db")
				convey.So(cfg.RevealBatch, convey.ShouldEqual, 6)
				convey.So(cfg.RevealInitial, convey.ShouldEqual, 12)
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "en")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeConfigFile(t, `
addr: ":9090"
store_driver: redis
redis_addr: "cache:6379"
redis_db: 2
reveal_delay_ms: 100
action_queue_size: 64
`)
			_ = os.Setenv("CAMPUS_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.StoreDriver, convey.ShouldEqual, "redis")
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "cache:6379")
				convey.So(cfg.RedisDB, convey.ShouldEqual, 2)
				convey.So(cfg.RevealDelayMS, convey.ShouldEqual, 100)
				convey.So(cfg.ActionQueueSize, convey.ShouldEqual, 64)
			})

			convey.Convey("When env vars are also set", func() {
				_ = os.Setenv("CAMPUS_ADDR", ":7070")

				cfg, err := config.Load(ctx)

				convey.Convey("Then env should take precedence over the file", func() {
					convey.So(err, convey.ShouldBeNil)
					convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
					convey.So(cfg.RedisAddr, convey.ShouldEqual, "cache:6379")
				})
			})
		})

		convey.Convey("When the config file is invalid YAML", func() {
			path := writeConfigFile(t, "addr: [unclosed\n")
			_ = os.Setenv("CAMPUS_CONFIG", path)

			_, err := config.Load(ctx)

			convey.Convey("Then it should report a load failure", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file is missing", func() {
			_ = os.Setenv("CAMPUS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then it should report a load failure", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value fails validation", func() {
			_ = os.Setenv("CAMPUS_STORE_DRIVER", "etcd")

			_, err := config.Load(ctx)

			convey.Convey("Then it should report an invalid config", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearConfigEnvVars() {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, config.EnvPrefix) {
			_ = os.Unsetenv(name)
		}
	}
}
