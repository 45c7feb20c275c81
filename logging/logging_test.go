package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/logging"
)

func TestInitWithConfig_StdoutJSON(t *testing.T) {
	cfg := logging.DefaultConfig()
	require.NoError(t, logging.InitWithConfig(cfg))
	require.NotNil(t, logging.Log)
}

func TestInitWithConfig_FileRequiresPath(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = ""
	require.Error(t, logging.InitWithConfig(cfg))
}

func TestInitWithConfig_FileRotation(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Output = "file"
	cfg.FilePath = filepath.Join(t.TempDir(), "whfc.log")
	require.NoError(t, logging.InitWithConfig(cfg))
	logging.Info("hello")
}

func TestInitWithConfig_UnknownOutput(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Output = "carrier-pigeon"
	require.Error(t, logging.InitWithConfig(cfg))
}

func TestNewRunID_Unique(t *testing.T) {
	a := logging.NewRunID()
	b := logging.NewRunID()
	require.NotEqual(t, a, b)
}

func TestWithRunID_AttachesField(t *testing.T) {
	require.NoError(t, logging.InitWithConfig(logging.DefaultConfig()))
	l := logging.WithRunID("abc-123")
	require.NotNil(t, l)
}
