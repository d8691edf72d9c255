package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShorthands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "uppercase shorthands lowered",
			args: []string{"input.bin", "-P", "g_", "-S", "_data"},
			want: []string{"input.bin", "-p", "g_", "-s", "_data"},
		},
		{
			name: "lowercase untouched",
			args: []string{"input.bin", "-p", "g_"},
			want: []string{"input.bin", "-p", "g_"},
		},
		{
			name: "long flags untouched",
			args: []string{"--Prefix", "g_"},
			want: []string{"--Prefix", "g_"},
		},
		{
			name: "values that look like options untouched",
			args: []string{"-p", "PX"},
			want: []string{"-p", "PX"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeShorthands(tt.args))
		})
	}
}

func TestRejectDuplicates(t *testing.T) {
	flags := New(Bin2C).Flags()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "distinct options", args: []string{"in.bin", "-p", "a", "-s", "b", "-g", "c"}},
		{name: "repeated shorthand", args: []string{"in.bin", "-p", "a", "-p", "b"}, wantErr: true},
		{name: "shorthand then long form", args: []string{"in.bin", "-p", "a", "--prefix", "b"}, wantErr: true},
		{name: "repeated long form", args: []string{"--config", "x", "--config=y"}, wantErr: true},
		{name: "unknown left to the parser", args: []string{"-x", "-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rejectDuplicates(tt.args, flags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

// chdirTemp moves the test into a fresh directory so default config lookup
// and artifact paths stay contained.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func TestLocalVariantEndToEnd(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x00, 0xFF, 0x41}, 0644))

	cmd := New(Bin2H)
	cmd.SetArgs([]string{"input.bin"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile("input.h")
	require.NoError(t, err)
	assert.Equal(t, "static unsigned char const input[] = { 0x00, 0xFF, 0x41 };\n", string(content))

	_, err = os.Stat("input.c")
	assert.True(t, os.IsNotExist(err), "local scope must not produce a source artifact")
}

func TestGlobalVariantEndToEnd(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x00, 0xFF, 0x41}, 0644))

	cmd := New(Bin2C)
	cmd.SetArgs([]string{"input.bin", "-g", "_LEN"})
	require.NoError(t, cmd.Execute())

	definition, err := os.ReadFile("input.c")
	require.NoError(t, err)
	assert.Equal(t,
		"#include \"input.h\"\n\nunsigned char const input[] = { 0x00, 0xFF, 0x41 };\n",
		string(definition))

	declaration, err := os.ReadFile("input.h")
	require.NoError(t, err)
	assert.Contains(t, string(declaration), "#define __INPUT_H__")
	assert.Contains(t, string(declaration), "extern unsigned char const input[];")
	assert.Contains(t, string(declaration), "#define INPUT_LEN  3")
}

func TestBin2CWithoutGlobalStaysLocal(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x01}, 0644))

	cmd := New(Bin2C)
	cmd.SetArgs([]string{"input.bin", "-p", "s_"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile("input.h")
	require.NoError(t, err)
	assert.Equal(t, "static unsigned char const s_input[] = { 0x01 };\n", string(content))
}

func TestConfigSuppliesDefaultsAndFlagsWin(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x01}, 0644))
	require.NoError(t, os.WriteFile("bin2c.yaml", []byte("naming:\n  prefix: cfg_\n"), 0644))

	cmd := New(Bin2H)
	cmd.SetArgs([]string{"input.bin"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile("input.h")
	require.NoError(t, err)
	assert.Contains(t, string(content), "cfg_input[]")

	cmd = New(Bin2H)
	cmd.SetArgs([]string{"input.bin", "-p", "flag_"})
	require.NoError(t, cmd.Execute())

	content, err = os.ReadFile("input.h")
	require.NoError(t, err)
	assert.Contains(t, string(content), "flag_input[]")
}

func TestMissingInputIsRunError(t *testing.T) {
	chdirTemp(t)

	cmd := New(Bin2H)
	cmd.SetArgs([]string{"absent.bin"})
	err := cmd.Execute()
	require.Error(t, err)

	var rerr *runError
	assert.True(t, errors.As(err, &rerr), "open failures are run errors, not argument errors")
}

func TestArgumentErrors(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x01}, 0644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "no positional argument", args: []string{}},
		{name: "too many positionals", args: []string{"a.bin", "b.bin"}},
		{name: "unknown option", args: []string{"input.bin", "-x", "v"}},
		{name: "missing option argument", args: []string{"input.bin", "-p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(Bin2H)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)

			var rerr *runError
			assert.False(t, errors.As(err, &rerr), "argument errors must not be run errors")
		})
	}
}

func TestGlobalFlagRejectedByLocalVariant(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x01}, 0644))

	cmd := New(Bin2H)
	cmd.SetArgs([]string{"input.bin", "-g", "_LEN"})
	require.Error(t, cmd.Execute())
}

func TestCaseInsensitiveShortOptionsEndToEnd(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile("input.bin", []byte{0x01}, 0644))

	cmd := New(Bin2C)
	cmd.SetArgs(normalizeShorthands([]string{"input.bin", "-P", "g_", "-G", "_LEN"}))
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "input.c"))
	declaration, err := os.ReadFile(filepath.Join(dir, "input.h"))
	require.NoError(t, err)
	assert.Contains(t, string(declaration), "#define G_INPUT_LEN  1")
}
