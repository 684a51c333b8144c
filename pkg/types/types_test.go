// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test basic type structures

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/types"
)

func TestClassification_String(t *testing.T) {
	tests := []struct {
		class types.Classification
		want  string
	}{
		{types.ClassRegular, "regular"},
		{types.ClassSymlinkResolved, "symlink-resolved"},
		{types.ClassSymlinkBroken, "symlink-broken"},
		{types.ClassSymlinkCyclic, "symlink-cyclic"},
		{types.Classification(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.class.String())
	}
}

func TestParseCompression(t *testing.T) {
	t.Run("valid_selectors", func(t *testing.T) {
		for _, s := range []string{"z", "b", "n"} {
			c, err := types.ParseCompression(s)
			require.NoError(t, err)
			assert.Equal(t, types.Compression(s), c)
		}
	})

	t.Run("invalid_selector", func(t *testing.T) {
		_, err := types.ParseCompression("xz")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("empty_selector", func(t *testing.T) {
		_, err := types.ParseCompression("")
		require.Error(t, err)
	})
}

func TestManifestEntry_Structure(t *testing.T) {
	entry := types.ManifestEntry{
		Physical: "/assets/Spell.dbc",
		Logical:  "DBFilesClient/Spell.dbc",
	}

	assert.Equal(t, "/assets/Spell.dbc", entry.Physical)
	assert.Equal(t, "DBFilesClient/Spell.dbc", entry.Logical)
}
