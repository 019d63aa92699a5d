/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomcat2357/piilocator/model"
)

func writeYAML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDefaultsToLF(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, model.NewlineLF, cfg.NewlineConvention)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := writeYAML(t, "newline_convention: crlf\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, model.NewlineCRLF, cfg.NewlineConvention)
}

func TestLoadEnvVarOverridesFile(t *testing.T) {
	path := writeYAML(t, "newline_convention: crlf\n")
	t.Setenv("PII_LOCATOR_NEWLINE_CONVENTION", "either")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, model.NewlineEither, cfg.NewlineConvention)
}

func TestLoadRejectsInvalidNewlineConvention(t *testing.T) {
	path := writeYAML(t, "newline_convention: lf_crlf_both\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid newline_convention")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
