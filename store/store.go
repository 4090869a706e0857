// Package store loads and saves save-analysis documents by URL.
package store

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/viant/afs"
	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/codec"
	"github.com/viant/rlsdata/version"
)

// Document represents a loaded document with its origin
type Document struct {
	URL         string
	Fingerprint uint64
	Version     version.Version
	Analysis    *analysis.Analysis
}

// Service loads and saves documents through afs; it is safe for concurrent use.
// Cached documents are shared between callers and must not be modified.
type Service struct {
	fs            afs.Service
	cache         *lru.Cache[uint64, *Document]
	cacheSize     int
	version       version.Version
	encodeOptions []codec.Option
}

// New creates a store service
func New(opts ...Option) (*Service, error) {
	ret := &Service{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.version != "" && !ret.version.Valid() {
		return nil, fmt.Errorf("invalid schema version %q", ret.version)
	}
	if ret.cacheSize > 0 {
		cache, err := lru.New[uint64, *Document](ret.cacheSize)
		if err != nil {
			return nil, err
		}
		ret.cache = cache
	}
	return ret, nil
}

// Load downloads and decodes a JSON document; Csv documents are export only
func (s *Service) Load(ctx context.Context, URL string) (*Document, error) {
	format, err := codec.FormatForFile(URL)
	if err != nil {
		return nil, err
	}
	if format == analysis.Csv {
		return nil, fmt.Errorf("load %v: %w", URL, codec.ErrUnsupportedFormat)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	doc, err := s.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", URL, err)
	}
	loaded := *doc
	loaded.URL = URL
	return &loaded, nil
}

// Decode decodes JSON document bytes, reusing a cached document with the same fingerprint
func (s *Service) Decode(data []byte) (*Document, error) {
	fingerprint, err := Fingerprint(data)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if doc, ok := s.cache.Get(fingerprint); ok {
			return doc, nil
		}
	}
	tree, err := codec.Parse(data, analysis.Json)
	if err != nil {
		return nil, err
	}
	v := s.version
	if v == "" {
		v = version.Detect(tree)
	}
	a, err := codec.DecodeTree(tree, documentKind(tree), v)
	if err != nil {
		return nil, err
	}
	doc := &Document{Fingerprint: fingerprint, Version: v, Analysis: a}
	if s.cache != nil {
		s.cache.Add(fingerprint, doc)
	}
	return doc, nil
}

// Save encodes a and uploads it to URL, appending the format extension when URL has none.
// It returns the URL written.
func (s *Service) Save(ctx context.Context, URL string, a *analysis.Analysis) (string, error) {
	if a == nil {
		return "", fmt.Errorf("save %v: nil analysis", URL)
	}
	if path.Ext(URL) == "" {
		URL = codec.FileName(URL, a.Kind)
	} else if ext := strings.ToLower(path.Ext(URL)); ext != a.Kind.Extension() {
		return "", fmt.Errorf("save %v: extension %v does not match %v: %w", URL, ext, a.Kind, codec.ErrUnsupportedFormat)
	}
	data, err := codec.Encode(a, s.encodeOptions...)
	if err != nil {
		return "", err
	}
	if err = s.fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	return URL, nil
}

// CacheLen returns number of cached documents
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// documentKind returns the JSON family kind a tree declares, Json when it declares none;
// decoding reports malformed kinds
func documentKind(tree map[string]interface{}) analysis.Format {
	if text, ok := tree["kind"].(string); ok {
		if kind, err := analysis.ParseFormat(text); err == nil && kind != analysis.Csv {
			return kind
		}
	}
	return analysis.Json
}
