package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"PODIUM_CONFIG",
		"PODIUM_ADDR",
		"PODIUM_LOG_LEVEL",
		"PODIUM_API_BASE_URL",
		"PODIUM_API_KEY",
		"PODIUM_TABLE",
		"PODIUM_FETCH_LIMIT",
		"PODIUM_DISPLAY_LIMIT",
		"PODIUM_STATE_PATH",
		"PODIUM_FETCH_TIMEOUT_MS",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.FetchLimit, convey.ShouldEqual, 500)
				convey.So(cfg.DisplayLimit, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_API_BASE_URL", "https://example.supabase.co")
			_ = os.Setenv("PODIUM_API_KEY", "anon-key")
			_ = os.Setenv("PODIUM_FETCH_LIMIT", "100")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, "https://example.supabase.co")
				convey.So(cfg.APIKey, convey.ShouldEqual, "anon-key")
				convey.So(cfg.FetchLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "podium.yaml")
			yaml := "addr: \":7070\"\ntable: contest_demo\ndisplay_limit: 10\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("PODIUM_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.Table, convey.ShouldEqual, "contest_demo")
				convey.So(cfg.DisplayLimit, convey.ShouldEqual, 10)
			})

			convey.Convey("And env still wins over the file", func() {
				_ = os.Setenv("PODIUM_ADDR", ":6060")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the endpoint and credential are absent", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then loading still succeeds; the fetch path reports it later", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIBaseURL, convey.ShouldBeEmpty)
				convey.So(cfg.APIKey, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When a limit is invalid", func() {
			_ = os.Setenv("PODIUM_FETCH_LIMIT", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid-config error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
