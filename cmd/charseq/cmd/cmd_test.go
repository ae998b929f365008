package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/ssargent/charseq/pkg/api"
	"github.com/ssargent/charseq/pkg/codec"
	"github.com/ssargent/charseq/pkg/config"
	"github.com/ssargent/charseq/pkg/di"
	"github.com/ssargent/charseq/pkg/textstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the command tree with an isolated home directory and
// returns trimmed stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func setupCmdTest(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetContainer(di.NewContainer())
	t.Cleanup(func() { SetContainer(nil) })
	return filepath.Join(t.TempDir(), "data")
}

func TestHexCommand(t *testing.T) {
	setupCmdTest(t)

	out, err := runCmd(t, "", "hex", "hi!")
	require.NoError(t, err)
	assert.Equal(t, "686921", out)

	out, err = runCmd(t, "\x00\x0a\xff", "hex")
	require.NoError(t, err)
	assert.Equal(t, "000AFF", out)
}

func TestEncodeDecodeCommands(t *testing.T) {
	setupCmdTest(t)

	out, err := runCmd(t, "", "encode", "16909060")
	require.NoError(t, err)
	assert.Equal(t, "01020304", out)

	out, err = runCmd(t, "", "encode", "0x1234", "--width", "16", "--order", "little")
	require.NoError(t, err)
	assert.Equal(t, "3412", out)

	out, err = runCmd(t, "", "decode", "AAFFFE", "--offset", "1", "--width", "16")
	require.NoError(t, err)
	assert.Equal(t, "-2", out)

	_, err = runCmd(t, "", "encode", "1", "--order", "little")
	assert.True(t, errors.Is(err, codec.ErrUnsupportedField))

	_, err = runCmd(t, "", "decode", "0102", "--offset", "1")
	assert.True(t, errors.Is(err, codec.ErrOutOfBounds))

	_, err = runCmd(t, "", "encode", "twelve")
	assert.Error(t, err)
}

func TestTextCommands(t *testing.T) {
	setupCmdTest(t)

	out, err := runCmd(t, "", "concat", "id=", "42", ";", "é")
	require.NoError(t, err)
	assert.Equal(t, "id=42;é", out)

	out, err = runCmd(t, "", "compare", "abc", "abd")
	require.NoError(t, err)
	assert.Equal(t, "-1", out)

	out, err = runCmd(t, "", "compare", "abc", "ab")
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestStoreCommands(t *testing.T) {
	dataDir := setupCmdTest(t)

	id, err := runCmd(t, "", "put", "hello", "--data-dir", dataDir)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := runCmd(t, "", "get", id, "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = runCmd(t, "", "put", "goodbye", "--id", id, "--data-dir", dataDir)
	require.NoError(t, err)

	out, err = runCmd(t, "", "get", id, "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Equal(t, "goodbye", out)

	out, err = runCmd(t, "", "list", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Equal(t, id, out)

	out, err = runCmd(t, "", "delete", id, "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+id, out)

	_, err = runCmd(t, "", "get", id, "--data-dir", dataDir)
	assert.True(t, errors.Is(err, textstore.ErrNotFound))

	_, err = runCmd(t, "", "get", "not-an-id", "--data-dir", dataDir)
	assert.Error(t, err)
}

func TestStoreCommands_NoContainer(t *testing.T) {
	dataDir := setupCmdTest(t)
	SetContainer(nil)

	_, err := runCmd(t, "", "list", "--data-dir", dataDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency container not initialized")
}

func TestConfigInitCommand(t *testing.T) {
	setupCmdTest(t)
	configPath := filepath.Join(t.TempDir(), "charseq.toml")

	out, err := runCmd(t, "", "config", "init", "--config", configPath, "--data-dir", "/srv/texts", "--print-key")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+configPath)
	assert.Contains(t, out, "API key: ")

	cfg, err := config.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/texts", cfg.DataDir)
	assert.Len(t, cfg.Security.APIKey, 64)

	_, err = runCmd(t, "", "config", "init", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCmd(t, "", "config", "init", "--config", configPath, "--force")
	assert.NoError(t, err)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	setupCmdTest(t)
	dataDir := filepath.Join(t.TempDir(), "from-config")
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.DefaultConfig()
	cfg.DataDir = dataDir
	require.NoError(t, config.SaveConfig(cfg, configPath))

	id, err := runCmd(t, "", "put", "configured", "--config", configPath)
	require.NoError(t, err)

	store, err := textstore.Open(dataDir)
	require.NoError(t, err)
	defer store.Close()
	ids, err := store.List()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, id, ids[0].String())

	_, err = runCmd(t, "", "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = runCmd(t, "", "list", "--log-level", "loud")
	assert.Error(t, err)
}

type recordingStarter struct {
	config api.ServerConfig
}

func (r *recordingStarter) StartServer(ctx context.Context, store api.TextStore, config api.ServerConfig) error {
	r.config = config
	_, err := store.Count()
	return err
}

type recordingFactory struct {
	starter *recordingStarter
}

func (f recordingFactory) CreateServerStarter(logger *logrus.Logger) api.ServerStarter {
	return f.starter
}

func TestServeCommand(t *testing.T) {
	dataDir := setupCmdTest(t)
	starter := &recordingStarter{}
	c := di.NewContainer()
	c.SetServerFactory(recordingFactory{starter: starter})
	SetContainer(c)

	_, err := runCmd(t, "", "serve", "--data-dir", dataDir, "--port", "9123", "--api-key", "k")
	require.NoError(t, err)

	assert.Equal(t, 9123, starter.config.Port)
	assert.Equal(t, "127.0.0.1", starter.config.Bind)
	assert.Equal(t, "k", starter.config.APIKey)
	assert.Equal(t, 4, starter.config.BuilderCapacity)

	_, err = runCmd(t, "", "serve", "--data-dir", dataDir, "--port", "70000")
	assert.Error(t, err)
}
