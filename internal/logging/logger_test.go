package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charonefono-prog/neuromodulation-mapper2-sub001/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapLogsWithoutConfig(t *testing.T) {
	log := Bootstrap()
	require.NotNil(t, log)

	// Console-only, so this must not touch the filesystem or panic.
	log.Info("starting up")
}

func TestInitWritesLevelFilesInConfiguredDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggingConfig{
		Directory:  dir,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	log, err := Init(cfg)
	require.NoError(t, err)

	log.Info("catalog loaded")
	log.Sync()

	infoFile := filepath.Join(dir, fmt.Sprintf("%s-info.log", time.Now().Format("2006-01-02")))
	data, err := os.ReadFile(infoFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog loaded")

	// The info core must not receive other levels.
	log.Warn("slow query")
	log.Sync()
	data, err = os.ReadFile(infoFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "slow query")
}

func TestInitFailsOnUnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	// A plain file where the log directory should be cannot be created.
	_, err := Init(config.LoggingConfig{Directory: filepath.Join(file, "logs")})
	assert.Error(t, err)
}
