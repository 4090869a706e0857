package store

import (
	"github.com/viant/afs"
	"github.com/viant/rlsdata/codec"
	"github.com/viant/rlsdata/version"
)

const defaultCacheSize = 64

type Option func(*Service)

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithCacheSize sets the number of decoded documents kept in memory, 0 disables caching
func WithCacheSize(size int) Option {
	return func(s *Service) {
		s.cacheSize = size
	}
}

// WithVersion sets the schema version of loaded documents; when unset the version is detected
func WithVersion(v version.Version) Option {
	return func(s *Service) {
		s.version = v
	}
}

// WithEncodeOptions sets options used when saving documents
func WithEncodeOptions(opts ...codec.Option) Option {
	return func(s *Service) {
		s.encodeOptions = append(s.encodeOptions, opts...)
	}
}
