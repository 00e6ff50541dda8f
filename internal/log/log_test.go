package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "beanthere.log")
	require.NoError(t, Init(path, "debug"))

	Debug(CatDB, "opening", "path", "/tmp/x.db")
	Info(CatCoffee, "logged drink", "bean", "Kenya AA")
	Warn(CatCmd, "odd input")
	ErrorErr(CatExport, "export failed", os.ErrPermission, "dir", "/nope")

	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "cat=db")
	require.Contains(t, content, "logged drink")
	require.Contains(t, content, "Kenya AA")
	require.Contains(t, content, "export failed")
}

func TestInit_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanthere.log")
	require.NoError(t, Init(path, "warn"))

	Debug(CatDB, "hidden debug line")
	Info(CatDB, "hidden info line")
	Warn(CatDB, "visible warn line")

	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden debug line")
	require.NotContains(t, string(data), "hidden info line")
	require.Contains(t, string(data), "visible warn line")
}

func TestLogging_DiscardedBeforeInit(t *testing.T) {
	// Must not panic without Init.
	Debug(CatDB, "nobody hears this")
	require.NoError(t, Close())
}
