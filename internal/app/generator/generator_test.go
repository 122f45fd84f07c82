package generator

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noop := zerolog.New(io.Discard)
	mockLog.EXPECT().Info().Return(noop.Info()).AnyTimes()

	return mockLog
}

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, config.FileName, opts.Path)
	assert.Equal(t, config.BackendURL, opts.BackendURL)
	assert.Equal(t, "1", opts.SessionID)
}

func Test_Render(t *testing.T) {
	content, err := Render(Options{BackendURL: "http://radio:9000", SessionID: "42"})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# metroems console configuration")
	assert.Contains(t, text, "url: http://radio:9000")
	assert.Contains(t, text, `id: "42"`)
	assert.Contains(t, text, "interval: 1s")
	assert.Contains(t, text, "window: 60")
	assert.Contains(t, text, "version: 1")
}

func Test_Generator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.FileName)
	gen := NewGenerator(newTestLogger(ctrl))

	opts := DefaultOptions()
	opts.Path = path
	opts.SessionID = "7"

	require.NoError(t, gen.Generate(opts, false, false))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "7", cfg.Session.ID)
	assert.Equal(t, config.BackendURL, cfg.Backend.URL)
	assert.Equal(t, config.PollInterval, cfg.Poll.Interval)
	assert.Equal(t, config.HealthTimeout, cfg.Backend.HealthTimeout)
	assert.Equal(t, config.ConnectedLogLimit, cfg.Logs.ConnectedLimit)
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(Options{Path: path}, false, false)
	assert.ErrorIs(t, err, errors.ErrFileExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}

func Test_Generator_Generate_ForceOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := NewGenerator(newTestLogger(ctrl))

	require.NoError(t, gen.Generate(Options{Path: path}, true, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version: 1")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	var out bytes.Buffer
	gen := NewGeneratorWithOutput(&out, newTestLogger(ctrl))

	require.NoError(t, gen.Generate(Options{Path: path}, false, true))

	assert.Contains(t, out.String(), "backend:")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}
