// cmd/mpqbuild/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem
// PURPOSE: Test CLI wiring of the root command and subcommands

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sogladev/mpqbuild/pkg/testutil"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "create")
	assert.Contains(t, names, "package")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "version")
}

func TestCreateCommand_ScaffoldsStructure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "ui-patch")

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"create", base, "--interface", "--fonts"})

	require.NoError(t, rootCmd.Execute())

	assert.True(t, testutil.DirExists(t, filepath.Join(base, "Interface", "Icons")))
	assert.True(t, testutil.DirExists(t, filepath.Join(base, "Fonts")))
	assert.False(t, testutil.DirExists(t, filepath.Join(base, "DBFilesClient")))
}

func TestCreateCommand_ExistingWithoutForceFails(t *testing.T) {
	base := t.TempDir()

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"create", base})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPackageCommand_MissingToolFails(t *testing.T) {
	staging := t.TempDir()
	testutil.CreateFile(t, staging, "Fonts/a.ttf", "font")

	// An empty PATH guarantees the archiver probe fails.
	t.Setenv("PATH", t.TempDir())

	rootCmd := NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"package", staging, filepath.Join(t.TempDir(), "out.mpq")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOOL_NOT_FOUND")
}
