package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

const scenarioHex = "e67d8e7b 39300000 ea16b04c 02000000"

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecodeScenario(t *testing.T) {
	testlog.Start(t)
	out, err := runCmd(t, "decode", scenarioHex)
	require.NoError(t, err)
	require.Contains(t, out, "inputPeerUser#7b8e7de6")
	require.Contains(t, out, `"UserID": 12345`)
	require.Contains(t, out, `"AccessHash": 9876543210`)
}

func TestDecodeUnknownTagWithMetrics(t *testing.T) {
	testlog.Start(t)
	out, err := runCmd(t, "decode", "--metrics", "01020304")
	require.True(t, errors.Is(err, bin.ErrUnknownConstructor), "got %v", err)
	require.Contains(t, out, `tlwire_codec_decode_errors_total{kind=unknown_constructor} 1`)
}

func TestDecodeFromFile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "peer.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xea, 0x18, 0x3b, 0x7f}, 0o600))
	out, err := runCmd(t, "decode", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "inputPeerEmpty#7f3b18ea")

	_, err = runCmd(t, "decode", "--file", path, "00")
	require.Error(t, err)
	_, err = runCmd(t, "decode", "zz")
	require.ErrorContains(t, err, "invalid hex")
}

func TestEncodeCheck(t *testing.T) {
	testlog.Start(t)
	out, err := runCmd(t, "encode-check", "0x"+strings.ReplaceAll(scenarioHex, " ", ""))
	require.NoError(t, err)
	require.Contains(t, out, "ok inputPeerUser (16 bytes)")

	_, err = runCmd(t, "encode-check", scenarioHex+" 00000000")
	require.Error(t, err)
}

func TestRegistryTable(t *testing.T) {
	testlog.Start(t)
	pterm.DisableColor()
	out, err := runCmd(t, "registry", "--type", "InputPeer")
	require.NoError(t, err)
	require.Contains(t, out, "inputPeerUser")
	require.Contains(t, out, "0x7b8e7de6")
	require.NotContains(t, out, "userStatusOnline")
	require.Contains(t, out, "layer 1, 5 constructors")
}

func TestConfigInitValidateAndUse(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "tlctl.toml")
	_, err := runCmd(t, "config", "init", path)
	require.NoError(t, err)
	out, err := runCmd(t, "config", "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "validated config")

	_, err = runCmd(t, "config", "init", path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[codec]\nmax_vector_len = 1\n"), 0o600))
	// contacts.found with a two-element results vector
	found := "84f7a11a" + "15c4b51c00000000" + "15c4b51c02000000" + "ea183b7f" + "ea183b7f" + "15c4b51c00000000"
	_, err = runCmd(t, "--config", path, "decode", found)
	require.ErrorIs(t, err, bin.ErrLimitExceeded)
}

func TestGenWritesFile(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "mini.tl")
	require.NoError(t, os.WriteFile(schemaPath, []byte("ping#7abe77ec ping_id:long = Pong;\n"), 0o600))
	outPath := filepath.Join(dir, "out", "mini_gen.go")

	out, err := runCmd(t, "gen", "--schema", schemaPath, "--output", outPath, "--package", "mini", "--layer", "4")
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+outPath)

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(src), "package mini")
	require.Contains(t, string(src), "const Layer = 4")
	require.Contains(t, string(src), "PingID int64")
	require.Contains(t, string(src), "// Source: mini.tl")
}
