package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/codec"
	"github.com/viant/rlsdata/internal/fixture"
	"github.com/viant/rlsdata/store"
	"github.com/viant/rlsdata/version"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		description string
		yaml        string
		env         map[string]string
		expect      *Config
		expectErr   bool
	}{
		{
			description: "defaults",
			expect:      DefaultConfig(),
		},
		{
			description: "yaml file",
			yaml:        "cacheSize: 8\nversion: 0.1.0\noutput: JsonApi\nindent: false\n",
			expect:      &Config{CacheSize: 8, Version: "0.1.0", Output: "JsonApi"},
		},
		{
			description: "env overrides file",
			yaml:        "cacheSize: 8\noutput: JsonApi\n",
			env:         map[string]string{"RLSDATA_CACHE_SIZE": "0", "RLSDATA_OUTPUT": "Csv", "RLSDATA_INDENT": "false"},
			expect:      &Config{CacheSize: 0, Output: "Csv"},
		},
		{
			description: "invalid output",
			yaml:        "output: Yaml\n",
			expectErr:   true,
		},
		{
			description: "invalid version",
			env:         map[string]string{"RLSDATA_VERSION": "latest"},
			expectErr:   true,
		},
		{
			description: "invalid cache size",
			env:         map[string]string{"RLSDATA_CACHE_SIZE": "many"},
			expectErr:   true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			for _, key := range []string{"RLSDATA_CACHE_SIZE", "RLSDATA_VERSION", "RLSDATA_OUTPUT", "RLSDATA_INDENT"} {
				t.Setenv(key, "")
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			location := ""
			if tc.yaml != "" {
				location = filepath.Join(t.TempDir(), "rlsdata.yaml")
				require.NoError(t, os.WriteFile(location, []byte(tc.yaml), 0644))
			}
			cfg, err := LoadConfig(location)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, cfg)
		})
	}
}

func saveFixture(t *testing.T, name string, a *analysis.Analysis) string {
	srv, err := store.New()
	require.NoError(t, err)
	URL, err := srv.Save(context.Background(), filepath.Join(t.TempDir(), name), a)
	require.NoError(t, err)
	return URL
}

func run(args ...string) (int, string, string) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := NewRunner(stdout, stderr).Run(context.Background(), args)
	return code, stdout.String(), stderr.String()
}

func TestRunner_Summary(t *testing.T) {
	URL := saveFixture(t, "demo", fixture.Crate())
	data, err := os.ReadFile(URL)
	require.NoError(t, err)
	fingerprint, err := store.Fingerprint(data)
	require.NoError(t, err)

	code, stdout, _ := run("summary", "-i", URL)
	require.Equal(t, 0, code)

	actual := &Summary{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), actual))
	expect := &Summary{
		URL:            URL,
		Crate:          "demo",
		Kind:           "Json",
		Version:        string(version.Current),
		Fingerprint:    fmt.Sprintf("%016x", fingerprint),
		ExternalCrates: 2,
		Imports:        3,
		Defs:           map[string]int{"Mod": 1, "Struct": 1, "Field": 1, "Trait": 2, "Method": 1, "Union": 1},
		Refs:           4,
		MacroRefs:      1,
		Relations:      2,
	}
	assert.Equal(t, expect, actual)
}

func TestRunner_Check(t *testing.T) {
	clean := saveFixture(t, "clean", fixture.Crate())
	code, stdout, _ := run("check", "-i", clean)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)

	broken := fixture.Crate()
	broken.Defs[0].Children = nil
	URL := saveFixture(t, "broken", broken)
	code, stdout, stderr := run("check", "-i", URL)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "MISSING_CHILD defs[1].parent")
	assert.Contains(t, stderr, "1 issue(s)")
}

func TestRunner_Convert(t *testing.T) {
	t.Setenv("RLSDATA_OUTPUT", "")
	input := saveFixture(t, "demo", fixture.Crate())
	dir := t.TempDir()

	code, _, stderr := run("convert", "-i", input, "-o", filepath.Join(dir, "demo"), "-kind", "JsonApi")
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(filepath.Join(dir, "demo.json"))
	require.NoError(t, err)
	converted, err := codec.Decode(data, analysis.JsonApi)
	require.NoError(t, err)
	expect := fixture.Crate()
	expect.Kind = analysis.JsonApi
	assert.Equal(t, expect, converted)

	code, _, stderr = run("convert", "-i", input, "-o", filepath.Join(dir, "demo"), "-kind", "Csv")
	require.Equal(t, 0, code, stderr)
	file, err := os.Open(filepath.Join(dir, "demo.csv"))
	require.NoError(t, err)
	defer file.Close()
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, codec.RecordPrelude, records[0][0])

	code, _, stderr = run("convert", "-i", input, "-o", filepath.Join(dir, "demo.txt"))
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(stderr, "convert:"))
}

func TestRunner_Upgrade(t *testing.T) {
	a := fixture.OneFunctionCrate()
	data, err := codec.EncodeVersion(a, version.Legacy)
	require.NoError(t, err)
	input := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(input, data, 0644))
	output := filepath.Join(t.TempDir(), "current.json")

	t.Setenv("RLSDATA_VERSION", "0.2.0")
	code, _, stderr := run("upgrade", "-i", input, "-o", output)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "upgraded")

	upgraded, err := os.ReadFile(output)
	require.NoError(t, err)
	actual, err := codec.Decode(upgraded, analysis.Json)
	require.NoError(t, err)
	assert.Equal(t, a, actual)
}

func TestRunner_Usage(t *testing.T) {
	code, _, stderr := run()
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage:")

	code, _, _ = run("explode")
	assert.Equal(t, 2, code)

	code, _, stderr = run("summary")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "-i")

	code, _, _ = run("convert", "-i", "in.json")
	assert.Equal(t, 1, code)
}
