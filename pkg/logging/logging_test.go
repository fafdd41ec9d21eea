package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thebartekbanach/thumbgate/pkg/logging"
)

func TestUnitTestNewReturnsErrorForUnknownLevel(t *testing.T) {
	_, err := logging.New("whisper")

	assert.NotNil(t, err)
}

func TestUnitTestNewWithWriterWritesJSONAtConfiguredLevel(t *testing.T) {
	var output bytes.Buffer

	logger, err := logging.NewWithWriter("INFO", &output)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	assert.Equal(t, 0, output.Len())

	logger.Info().Str("path", "/thumbor").Msg("visible")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(output.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "/thumbor", entry["path"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}
