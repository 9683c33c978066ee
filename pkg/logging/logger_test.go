package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stable/endpoints/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	buf := &bytes.Buffer{}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "error message")
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithKey(ctx, "getProfileByUUID")
	ctx = logging.WithBaseURL(ctx, "http://127.0.0.1:8787")
	ctx = logging.WithOperation(ctx, "resolve")

	logging.FromContext(ctx).Info().Msg("resolved")

	testLogger.AssertContains(t, `"endpoint_key":"getProfileByUUID"`)
	testLogger.AssertContains(t, `"base_url":"http://127.0.0.1:8787"`)
	testLogger.AssertContains(t, `"operation":"resolve"`)
	testLogger.AssertContains(t, "resolved")
	assert.Equal(t, 1, testLogger.Count())
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))
}

func TestWithFieldsAndError(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	ctx = logging.WithFields(ctx, map[string]any{
		"count":  5,
		"strict": true,
	})
	ctx = logging.WithError(ctx, assert.AnError)
	same := logging.WithError(ctx, nil)
	assert.Equal(t, ctx, same)

	logging.FromContext(ctx).Warn().Msg("fields")

	testLogger.AssertContains(t, `"count":5`)
	testLogger.AssertContains(t, `"strict":true`)
	testLogger.AssertContains(t, `"error":"`+assert.AnError.Error()+`"`)
}

func TestNewLoggerFromConfig(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	tests := []struct {
		name     string
		level    string
		present  []string
		excluded []string
	}{
		{
			name:    "debug level",
			level:   "debug",
			present: []string{`"level":"debug"`, `"level":"info"`},
		},
		{
			name:     "error level only",
			level:    "error",
			present:  []string{`"level":"error"`},
			excluded: []string{`"level":"info"`, `"level":"debug"`},
		},
		{
			name:     "invalid level falls back to info",
			level:    "loud",
			present:  []string{`"level":"info"`},
			excluded: []string{`"level":"debug"`},
		},
	}

	t.Cleanup(func() { _ = logging.CloseFiles() })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.json")
			logger := logging.NewLoggerFromConfig(&logging.Config{
				Level:  tt.level,
				Format: "json",
				Output: path,
				Fields: map[string]any{"app": "endpoints"},
			})

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			output := string(content)

			assert.Contains(t, output, `"app":"endpoints"`)
			for _, s := range tt.present {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excluded {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, logging.ParseLevel("trace"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel("WARNING"))
	assert.Equal(t, zerolog.Disabled, logging.ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("nonsense"))
}

func TestConfigureFromEnv(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Cleanup(func() { _ = logging.CloseFiles() })

	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", path)
	t.Setenv("LOG_FIELDS", "service=endpoints, env = test")

	logging.ConfigureFromEnv()
	logging.Info().Msg("hidden")
	logging.Warn().Msg("shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	output := string(content)
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
	assert.Contains(t, output, `"service":"endpoints"`)
	assert.Contains(t, output, `"env":"test"`)
}

func TestCaptureLoggingForTest(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	outer := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(outer))

	t.Run("captures", func(t *testing.T) {
		captured := logging.CaptureLoggingForTest(t)
		logging.Info().Msg("captured message")
		captured.AssertContains(t, "captured message")
	})

	logging.Info().Msg("after restore")
	assert.NotContains(t, outer.String(), "captured message")
	assert.Contains(t, outer.String(), "after restore")
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestCallerEnabled(t *testing.T) {
	tests := []struct {
		setting string
		level   string
		want    bool
	}{
		{"", "info", false},
		{"", "debug", true},
		{"", "trace", true},
		{"false", "debug", false},
		{"true", "warn", true},
		{"maybe", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.setting+"/"+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.CallerEnabled(tt.setting, tt.level))
		})
	}
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, map[string]any{"service": "endpoints", "env": "test"},
		logging.ParseFields("service=endpoints, env = test,broken"))
	assert.Empty(t, logging.ParseFields(""))
}

func TestNewLoggerFromConfig_CallerOnlyWhenAsked(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })
	t.Cleanup(func() { _ = logging.CloseFiles() })

	path := filepath.Join(t.TempDir(), "caller.log")
	logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: path})
	logger.Debug().Msg("plain")

	logger = logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: path, AddCaller: true})
	logger.Debug().Msg("annotated")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], `"caller"`)
	assert.Contains(t, lines[1], `"caller"`)
}

func TestNewLoggerFromConfig_SharesFileHandle(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	path := filepath.Join(t.TempDir(), "shared.log")
	cfg := &logging.Config{Level: "info", Format: "json", Output: path}

	first := logging.NewLoggerFromConfig(cfg)
	second := logging.NewLoggerFromConfig(cfg)
	first.Info().Msg("one")
	second.Info().Msg("two")

	require.NoError(t, logging.CloseFiles())
	require.NoError(t, logging.CloseFiles())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"one"`)
	assert.Contains(t, string(content), `"message":"two"`)
}
