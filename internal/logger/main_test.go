package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storiesascode/storiesascode/internal/logger"
)

func TestInit_Console(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logger.Log
		hasOutput bool
		isJSON    bool
	}{
		{
			name:      "no writer enabled",
			cfg:       logger.Log{Level: "info", AppName: "test"},
			hasOutput: false,
		},
		{
			name: "console writer",
			cfg: logger.Log{
				Level:   "info",
				AppName: "test",
				Console: logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			hasOutput: true,
		},
		{
			name: "json info",
			cfg: logger.Log{
				Level:   "info",
				AppName: "test",
				Console: logger.Console{Enabled: true},
			},
			hasOutput: true,
			isJSON:    true,
		},
		{
			name: "json trace with caller and stack",
			cfg: logger.Log{
				Level:        "trace",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			hasOutput: true,
			isJSON:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(t, tt.cfg)

			if !tt.hasOutput {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)
			assert.Contains(t, out, "this info message should be seen")

			if !tt.isJSON {
				return
			}

			for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
				var entry struct {
					Level   string `json:"level"`
					App     string `json:"app"`
					Message string `json:"message"`
				}

				require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
				assert.Equal(t, "test", entry.App)
			}
		})
	}
}

func TestInit_Errors(t *testing.T) {
	require.Error(t, logger.Init(logger.Log{Level: "loud", AppName: "test"}))
	require.ErrorIs(t, logger.Init(logger.Log{Level: "info"}), logger.ErrAppNameIsEmpty)
}

func TestInit_RollingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, logger.Init(logger.Log{
		Level:   "trace",
		AppName: "test",
		File: logger.LogFile{
			Enabled: true,
			Path:    dir,
			Error:   logger.Rotation{Name: "error.log", MaxSize: 1},
			Info:    logger.Rotation{Name: "info.log", MaxSize: 1},
			Trace:   logger.Rotation{Name: "trace.log", MaxSize: 1},
			Warn:    logger.Rotation{Name: "warn.log", MaxSize: 1},
		},
	}))

	log.Info().Msg("to info")
	log.Debug().Msg("to info as well")
	log.Warn().Msg("to warn")
	log.Error().Msg("to error")
	log.Trace().Msg("to trace")

	read := func(name string) string {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		return string(raw)
	}

	info := read("info.log")
	assert.Contains(t, info, "to info")
	assert.Contains(t, info, "to info as well")
	assert.NotContains(t, info, "to warn")
	assert.Contains(t, read("warn.log"), "to warn")
	assert.Contains(t, read("error.log"), "to error")
	assert.Contains(t, read("trace.log"), "to trace")
}

func TestLevelWriter(t *testing.T) {
	var info, warn, errs bytes.Buffer

	lw := &logger.LevelWriter{InfoWriter: &info, WarnWriter: &warn, ErrorWriter: &errs}

	_, err := lw.WriteLevel(zerolog.DebugLevel, []byte("d"))
	require.NoError(t, err)
	_, err = lw.WriteLevel(zerolog.WarnLevel, []byte("w"))
	require.NoError(t, err)
	_, err = lw.WriteLevel(zerolog.FatalLevel, []byte("f"))
	require.NoError(t, err)

	n, err := lw.WriteLevel(zerolog.TraceLevel, []byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, len("dropped"), n)

	n, err = lw.WriteLevel(zerolog.Disabled, []byte("x"))
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Equal(t, "d", info.String())
	assert.Equal(t, "w", warn.String())
	assert.Equal(t, "f", errs.String())
}

func TestPrometheusHook(t *testing.T) {
	hook := logger.NewPrometheusHook("test")
	require.NotNil(t, logger.LogStatements())

	warns := logger.LogStatements().WithLabelValues("warn")
	before := testutil.ToFloat64(warns)

	var buf bytes.Buffer

	l := zerolog.New(&buf).Hook(hook)
	l.Warn().Msg("counted")
	l.Warn().Msg("counted too")
	l.Log().Msg("no level")

	assert.InDelta(t, before+2, testutil.ToFloat64(warns), 0)
}

func TestConsoleWriter_StdoutStaysClean(t *testing.T) {
	stdout, stderr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = outW, errW

	initErr := logger.Init(logger.Log{
		Level:   "debug",
		AppName: "test",
		Console: logger.Console{Enabled: true, UseConsoleWriter: true},
	})

	log.Debug().Msg("debug goes to stderr")
	log.Info().Msg("info goes to stderr")

	_ = outW.Close()
	_ = errW.Close()
	os.Stdout, os.Stderr = stdout, stderr

	require.NoError(t, initErr)

	out, err := io.ReadAll(outR)
	require.NoError(t, err)
	errOut, err := io.ReadAll(errR)
	require.NoError(t, err)

	assert.Empty(t, string(out))
	assert.Contains(t, string(errOut), "debug goes to stderr")
	assert.Contains(t, string(errOut), "info goes to stderr")
}

func TestWriteMetrics(t *testing.T) {
	hook := logger.NewPrometheusHook("test")

	var buf bytes.Buffer

	l := zerolog.New(&buf).Hook(hook)
	l.Error().Msg("counted")

	var metrics bytes.Buffer
	require.NoError(t, logger.WriteMetrics(&metrics))

	assert.Contains(t, metrics.String(), "# TYPE stories_log_statements_total counter")
	assert.Contains(t, metrics.String(), `level="error"`)
	assert.NotContains(t, metrics.String(), "go_goroutines")
}

func alwaysErr() error {
	return errors.New("a test error") //nolint:err113
}

// capture runs Init with cfg and returns what a few log statements wrote to stdout and stderr.
func capture(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout, os.Stderr = w, w

	initErr := logger.Init(cfg)

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErr()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErr()).Msg("this trace message should be seen...")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout, os.Stderr = stdout, stderr

	require.NoError(t, initErr)

	return <-outC
}
