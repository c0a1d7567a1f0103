package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/draftintel/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

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
				convey.So(cfg.UserID, convey.ShouldEqual, "911578685892915200")
				convey.So(cfg.LeagueID, convey.ShouldEqual, "1180303867694456832")
				convey.So(cfg.HTTPTimeoutMS, convey.ShouldEqual, 20_000)
				convey.So(cfg.FetchConcurrency, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SLEEPER_ADDR", ":8080")
			_ = os.Setenv("SLEEPER_USER_ID", "42")
			_ = os.Setenv("SLEEPER_LEAGUE_ID", "777")
			_ = os.Setenv("SLEEPER_FETCH_CONCURRENCY", "4")
			_ = os.Setenv("SLEEPER_HTTP_TIMEOUT_MS", "5000")
			_ = os.Setenv("SLEEPER_LOG_FORMAT", "json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.UserID, convey.ShouldEqual, "42")
				convey.So(cfg.LeagueID, convey.ShouldEqual, "777")
				convey.So(cfg.FetchConcurrency, convey.ShouldEqual, 4)
				convey.So(cfg.HTTPTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
league_id: "555"
base_url: "http://localhost:7000/v1"
allowed_origins: "http://localhost:3000"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SLEEPER_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LeagueID, convey.ShouldEqual, "555")
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://localhost:7000/v1")
				convey.So(cfg.Origins(), convey.ShouldResemble, []string{"http://localhost:3000"})
				convey.So(cfg.UserID, convey.ShouldEqual, config.DefaultUserID)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
league_id: "555"
fetch_concurrency: 2
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SLEEPER_CONFIG", tmpFile)
			_ = os.Setenv("SLEEPER_LEAGUE_ID", "999")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")        // From file
				convey.So(cfg.LeagueID, convey.ShouldEqual, "999")      // Overridden by env
				convey.So(cfg.FetchConcurrency, convey.ShouldEqual, 2) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SLEEPER_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("SLEEPER_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("SLEEPER_FETCH_CONCURRENCY", "many")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderBlankEnv(t *testing.T) {
	convey.Convey("Given identity env vars that are exported but blank", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		_ = os.Setenv("SLEEPER_USER_ID", "")
		_ = os.Setenv("SLEEPER_LEAGUE_ID", "  ")
		_ = os.Setenv("SLEEPER_ADDR", "")
		defer clearConfigEnvVars()

		convey.Convey("When loading config", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then the defaults are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.UserID, convey.ShouldEqual, config.DefaultUserID)
				convey.So(cfg.LeagueID, convey.ShouldEqual, config.DefaultLeagueID)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			})
		})

		convey.Convey("When a YAML file sets the league", func() {
			tmpFile := createTempConfigFile("league_id: \"555\"\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("SLEEPER_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then the blank env var does not override the file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LeagueID, convey.ShouldEqual, "555")
			})
		})
	})
}

func TestConfigLoaderValidation(t *testing.T) {
	convey.Convey("Given config loader validation", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		cases := []struct {
			name    string
			yaml    string
			message string
		}{
			{"empty addr", "addr: \"\"  # inline\n", "addr must not be empty"},
			{"blank user id", "user_id: \"  \"\n", "user_id must not be empty"},
			{"empty league id", "league_id: \"\"\n", "league_id must not be empty"},
			{"empty base url", "# comment only\nbase_url: \"\"\n", "base_url must not be empty"},
			{"zero timeout", "http_timeout_ms: 0\n", "http_timeout_ms must be positive"},
			{"zero concurrency", "fetch_concurrency: 0\n", "fetch_concurrency must be at least 1"},
		}

		for _, tc := range cases {
			convey.Convey("When the YAML file has "+tc.name, func() {
				tmpFile := createTempConfigFile(tc.yaml)
				defer func() { _ = os.Remove(tmpFile) }()

				_ = os.Setenv("SLEEPER_CONFIG", tmpFile)
				defer clearConfigEnvVars()

				cfg, err := config.Load(ctx)

				convey.Convey("Then it should return a validation error", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(err.Error(), convey.ShouldContainSubstring, tc.message)
					convey.So(cfg, convey.ShouldBeNil)
				})
			})
		}

		convey.Convey("When env sets a zero concurrency", func() {
			_ = os.Setenv("SLEEPER_FETCH_CONCURRENCY", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"SLEEPER_CONFIG",
		"SLEEPER_ADDR",
		"SLEEPER_LOG_LEVEL",
		"SLEEPER_LOG_FORMAT",
		"SLEEPER_USER_ID",
		"SLEEPER_LEAGUE_ID",
		"SLEEPER_BASE_URL",
		"SLEEPER_USER_AGENT",
		"SLEEPER_HTTP_TIMEOUT_MS",
		"SLEEPER_FETCH_CONCURRENCY",
		"SLEEPER_ALLOWED_ORIGINS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "draftintel-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
