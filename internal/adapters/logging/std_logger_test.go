package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/logging"
	"github.com/andrescamacho/factoryplanner-go/internal/application/common"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
)

func TestStdLogger_FiltersBelowLevel(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	logger := logging.NewStdLogger(&out, "warn", "text")

	// Act
	logger.Log(common.LevelInfo, "hidden", nil)
	logger.Log(common.LevelError, "shown", map[string]interface{}{"recipe": "Gear", "count": 3})

	// Assert
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "ERROR shown count=3 recipe=Gear")
}

func TestStdLogger_JSONFormat(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	logger := logging.NewStdLogger(&out, "debug", "json")

	// Act
	logger.Log(common.LevelDebug, "Solved production setup", map[string]interface{}{"item": "Iron"})

	// Assert
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "Solved production setup", record["message"])
	assert.Equal(t, "Iron", record["item"])
}

func TestNewStdLoggerFromConfig_File(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "planner.log")
	logger, err := logging.NewStdLoggerFromConfig(config.LoggingConfig{
		Level: "info", Format: "text", Output: "file", FilePath: path,
	})
	require.NoError(t, err)

	// Act
	logger.Log(common.LevelInfo, "Production line planned", nil)
	require.NoError(t, logger.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO  Production line planned")
}

func TestNewStdLoggerFromConfig_UnknownOutput(t *testing.T) {
	_, err := logging.NewStdLoggerFromConfig(config.LoggingConfig{Output: "syslog"})

	assert.Error(t, err)
}
