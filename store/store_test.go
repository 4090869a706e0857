package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/codec"
	"github.com/viant/rlsdata/internal/fixture"
	"github.com/viant/rlsdata/version"
)

func TestService_SaveLoad(t *testing.T) {
	tests := []struct {
		description string
		name        string
		kind        analysis.Format
		expectName  string
	}{
		{description: "json without extension", name: "demo", kind: analysis.Json, expectName: "demo.json"},
		{description: "json api with extension", name: "api.json", kind: analysis.JsonApi, expectName: "api.json"},
	}
	ctx := context.Background()
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			dir := t.TempDir()
			srv, err := New()
			require.NoError(t, err)

			expected := fixture.Crate()
			expected.Kind = tc.kind
			URL, err := srv.Save(ctx, filepath.Join(dir, tc.name), expected)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tc.expectName), URL)

			doc, err := srv.Load(ctx, URL)
			require.NoError(t, err)
			assert.Equal(t, URL, doc.URL)
			assert.Equal(t, version.Current, doc.Version)
			assert.Equal(t, expected, doc.Analysis)

			data, err := os.ReadFile(URL)
			require.NoError(t, err)
			fingerprint, err := Fingerprint(data)
			require.NoError(t, err)
			assert.Equal(t, fingerprint, doc.Fingerprint)
		})
	}
}

func TestService_Cache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv, err := New(WithCacheSize(1))
	require.NoError(t, err)

	first, err := srv.Save(ctx, filepath.Join(dir, "first"), fixture.Crate())
	require.NoError(t, err)
	copied := filepath.Join(dir, "copy.json")
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(copied, data, 0644))

	a, err := srv.Load(ctx, first)
	require.NoError(t, err)
	b, err := srv.Load(ctx, copied)
	require.NoError(t, err)
	assert.Same(t, a.Analysis, b.Analysis, "identical bytes share the decoded document")
	assert.Equal(t, copied, b.URL)
	assert.Equal(t, first, a.URL)
	assert.Equal(t, 1, srv.CacheLen())

	second, err := srv.Save(ctx, filepath.Join(dir, "second"), fixture.OneFunctionCrate())
	require.NoError(t, err)
	_, err = srv.Load(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, srv.CacheLen(), "cache is bounded")

	uncached, err := New(WithCacheSize(0))
	require.NoError(t, err)
	c, err := uncached.Load(ctx, first)
	require.NoError(t, err)
	d, err := uncached.Load(ctx, first)
	require.NoError(t, err)
	assert.NotSame(t, c.Analysis, d.Analysis)
	assert.Equal(t, c.Analysis, d.Analysis)
	assert.Equal(t, 0, uncached.CacheLen())
}

func TestService_LoadLegacy(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := fixture.OneFunctionCrate()
	data, err := codec.EncodeVersion(a, version.Legacy)
	require.NoError(t, err)
	URL := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(URL, data, 0644))

	srv, err := New()
	require.NoError(t, err)
	doc, err := srv.Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, version.Legacy, doc.Version)
	assert.Equal(t, a, doc.Analysis)

	strict, err := New(WithVersion(version.Current))
	require.NoError(t, err)
	_, err = strict.Load(ctx, URL)
	assert.True(t, errors.Is(err, codec.ErrMissingField))
}

func TestService_LoadCurrentWithoutParent(t *testing.T) {
	const span = `{"file_name":"a.rs","byte_start":0,"byte_end":1,"line_start":1,"line_end":1,"column_start":1,"column_end":2}`
	document := `{"kind":"Json","imports":[],"refs":[],"macro_refs":[],"relations":[],"defs":[` +
		`{"kind":"Union","id":{"krate":0,"index":1},"span":` + span + `,"name":"Bits","qualname":"c::Bits","value":"","children":[],"docs":"","attributes":[]}]}`
	URL := filepath.Join(t.TempDir(), "current.json")
	require.NoError(t, os.WriteFile(URL, []byte(document), 0644))

	srv, err := New()
	require.NoError(t, err)
	doc, err := srv.Load(context.Background(), URL)
	require.NoError(t, err)
	assert.Equal(t, version.Current, doc.Version)
	require.Len(t, doc.Analysis.Defs, 1)
	assert.Equal(t, analysis.DefUnion, doc.Analysis.Defs[0].Kind)
	assert.Nil(t, doc.Analysis.Defs[0].Parent)
}

func TestService_SaveUpperCaseExtension(t *testing.T) {
	ctx := context.Background()
	srv, err := New()
	require.NoError(t, err)
	expected := fixture.OneFunctionCrate()
	URL, err := srv.Save(ctx, filepath.Join(t.TempDir(), "demo.JSON"), expected)
	require.NoError(t, err)
	assert.Equal(t, ".JSON", filepath.Ext(URL))

	doc, err := srv.Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, expected, doc.Analysis)
}

func TestService_Errors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv, err := New()
	require.NoError(t, err)

	_, err = srv.Load(ctx, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = srv.Load(ctx, filepath.Join(dir, "export.csv"))
	assert.True(t, errors.Is(err, codec.ErrUnsupportedFormat))

	_, err = srv.Load(ctx, filepath.Join(dir, "notes.txt"))
	assert.True(t, errors.Is(err, codec.ErrUnsupportedFormat))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"kind":"Yaml","imports":[],"defs":[],"refs":[],"macro_refs":[],"relations":[]}`), 0644))
	_, err = srv.Load(ctx, bad)
	var decodeErr *codec.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "kind", decodeErr.Path)

	a := fixture.OneFunctionCrate()
	a.Kind = analysis.Csv
	_, err = srv.Save(ctx, filepath.Join(dir, "out.json"), a)
	assert.True(t, errors.Is(err, codec.ErrUnsupportedFormat))

	URL, err := srv.Save(ctx, filepath.Join(dir, "out"), a)
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(URL))

	_, err = New(WithVersion("latest"))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint([]byte("demo"))
	require.NoError(t, err)
	b, err := Fingerprint([]byte("demo"))
	require.NoError(t, err)
	c, err := Fingerprint([]byte("demo2"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, fingerprintKey, 32)
}
