package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/soyeahso/underline/internal/config"
	"github.com/soyeahso/underline/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkCall struct {
	enabled bool
	path    string
}

type fakeSink struct {
	calls []sinkCall
}

func (s *fakeSink) ConfigureErrorLog(enabled bool, path string) {
	s.calls = append(s.calls, sinkCall{enabled, path})
}

func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("UNDERLINE_HOME", dir)

	p, err := config.ResolvePaths()
	require.NoError(t, err)

	origPaths, origLog, origCfg := paths, log, cfgFile
	t.Cleanup(func() { paths, log, cfgFile = origPaths, origLog, origCfg })

	paths = p
	cfgFile = ""
	log = logging.Nop()
	return dir
}

func TestBootstrapFirstRun(t *testing.T) {
	setupCLI(t)
	sink := &fakeSink{}

	store, reg, err := bootstrap(context.Background(), sink)
	require.NoError(t, err)

	assert.FileExists(t, paths.Config)
	assert.Equal(t, []string{"config", "config-env", "api"}, reg.List())
	assert.Equal(t, config.Defaults(), store.Values())
	assert.Equal(t, []sinkCall{{false, "api.log"}}, sink.calls)
}

func TestBootstrapEnvOverridesReachAPI(t *testing.T) {
	setupCLI(t)
	t.Setenv("UNDERLINE_LOG_API_ISSUES", "true")
	t.Setenv("UNDERLINE_API_LOG_FILE", "env.log")
	sink := &fakeSink{}

	_, _, err := bootstrap(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, []sinkCall{{true, "env.log"}}, sink.calls)
}

func TestBootstrapMalformedConfigStops(t *testing.T) {
	setupCLI(t)
	require.NoError(t, paths.EnsureDirs())
	require.NoError(t, os.WriteFile(paths.Config, []byte(`{"logApiIssues": true}`), 0o600))
	sink := &fakeSink{}

	_, _, err := bootstrap(context.Background(), sink)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMalformedConfig)
	assert.Empty(t, sink.calls)
}

func TestLoadStoreExplicitConfigFile(t *testing.T) {
	dir := setupCLI(t)
	cfgFile = filepath.Join(dir, "custom.json")
	paths.Config = cfgFile

	store, err := loadStore()
	require.NoError(t, err)
	assert.FileExists(t, cfgFile)
	assert.Equal(t, "api.log", store.APILogFile())

	// the default logs directory is left alone
	_, err = os.Stat(paths.Logs)
	assert.True(t, os.IsNotExist(err))
}

func TestPrintValuesFormat(t *testing.T) {
	values := config.New().Export()
	assert.NoError(t, printValues(values, "json"))
	assert.NoError(t, printValues(values, "yaml"))
	assert.Error(t, printValues(values, "toml"))
}
