package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		core   string
		suffix string
		want   string
	}{
		{name: "core only", core: "data", want: "data"},
		{name: "all parts", prefix: "g_", core: "data", suffix: "_bytes", want: "g_data_bytes"},
		{name: "prefix only", prefix: "s_", core: "data", want: "s_data"},
		{name: "suffix only", core: "data", suffix: "_blob", want: "data_blob"},
		{name: "case preserved", prefix: "My", core: "Data", suffix: "Raw", want: "MyDataRaw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.prefix, tt.core, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMacro(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		core   string
		suffix string
		want   string
	}{
		{name: "core only", core: "data", want: "DATA"},
		{name: "all parts", prefix: "g_", core: "data", suffix: "_len", want: "G_DATA_LEN"},
		{name: "already upper", core: "DATA", want: "DATA"},
		{name: "digits and underscores pass through", core: "blob_2025", want: "BLOB_2025"},
		{name: "non-ascii bytes pass through", core: "donn\xc3\xa9es", want: "DONN\xc3\xa9ES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Macro(tt.prefix, tt.core, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Macro output length must equal the sum of the fragment lengths: the
// transform is byte for byte, never folding or expanding.
func TestMacroLengthPreserved(t *testing.T) {
	prefix, core, suffix := "g_", "donn\xc3\xa9es", "_len"
	got, err := Macro(prefix, core, suffix)
	require.NoError(t, err)
	assert.Len(t, got, len(prefix)+len(core)+len(suffix))
}

func TestLengthBound(t *testing.T) {
	exact := strings.Repeat("a", MaxLen-1)

	got, err := Build("", exact, "")
	require.NoError(t, err)
	assert.Len(t, got, MaxLen-1)

	_, err = Build("a", exact, "")
	require.ErrorIs(t, err, ErrNameTooLong)

	macro, err := Macro("a", exact, "")
	require.ErrorIs(t, err, ErrNameTooLong)
	assert.Empty(t, macro, "no partial output on failure")

	_, err = Macro("", exact, "b")
	require.ErrorIs(t, err, ErrNameTooLong)
}
