// pkg/commands/create/create_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem
// PURPOSE: Test staging-area scaffolding

package create_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/mpqbuild/pkg/commands/create"
	"github.com/sogladev/mpqbuild/pkg/errors"
	"github.com/sogladev/mpqbuild/pkg/testutil"
)

func TestRun_FullStructure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch-4")

	result, err := create.Run(create.Options{Path: base})
	require.NoError(t, err)

	assert.Len(t, result.Directories, 48)
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "DBFilesClient")))
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "Interface", "Icons")))
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "World", "wmo")))
	assert.True(t, testutil.FileExists(t, filepath.Join(base, "README.txt")))
}

func TestRun_SelectedCategories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ui-patch")

	result, err := create.Run(create.Options{
		Path:       base,
		Categories: []string{"interface", "fonts"},
	})
	require.NoError(t, err)

	assert.True(t, testutil.DirExists(t, filepath.Join(base, "Interface", "AddOns")))
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "Fonts")))
	assert.False(t, testutil.DirExists(t, filepath.Join(base, "DBFilesClient")))
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(base, "README.txt")),
		"Created categories: interface, fonts")
	assert.Len(t, result.Directories, 28)
}

func TestRun_InvalidCategory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch-4")

	_, err := create.Run(create.Options{
		Path:       base,
		Categories: []string{"interface", "bogus"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))

	// Nothing was created for an invalid request.
	assert.False(t, testutil.DirExists(t, base))
}

func TestRun_ExistingWithoutForce(t *testing.T) {
	base := t.TempDir()

	_, err := create.Run(create.Options{Path: base})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestRun_ForceRecreates(t *testing.T) {
	base := filepath.Join(t.TempDir(), "patch-4")

	_, err := create.Run(create.Options{Path: base, Categories: []string{"fonts"}})
	require.NoError(t, err)
	stale := testutil.CreateFile(t, base, "Fonts/stale.ttf", "old")

	_, err = create.Run(create.Options{Path: base, Force: true})
	require.NoError(t, err)

	assert.False(t, testutil.FileExists(t, stale), "force should remove previous content")
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "DBFilesClient")))
}
