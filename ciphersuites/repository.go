package ciphersuites

import (
	"sync"
)

// A Repository holds the process-wide cipher suite catalog. The catalog is
// built on first use and cached for the lifetime of the process; after
// construction it is never mutated, so lookups need no locking.
type Repository struct {
	legacy Engine
	modern Engine

	once    sync.Once
	catalog Catalog
	err     error
}

// NewRepository returns a Repository backed by the two engine variants. No
// enumeration happens until the first lookup.
func NewRepository(legacy, modern Engine) *Repository {
	return &Repository{legacy: legacy, modern: modern}
}

// GetAllCipherSuites returns the cipher suites supported by the engine for
// the given SSL/TLS version. The first call triggers the one-time catalog
// build; concurrent first calls are safe and build exactly once. The only
// error ever returned is the build failure, which is the same for every
// subsequent call: a partially built catalog is never visible.
func (r *Repository) GetAllCipherSuites(vers ProtocolVersion) ([]CipherSuite, error) {
	r.once.Do(func() {
		r.catalog, r.err = Build(r.legacy, r.modern)
	})
	if r.err != nil {
		return nil, r.err
	}
	return r.catalog[vers], nil
}

// MustGetAllCipherSuites is like GetAllCipherSuites but panics if the
// catalog could not be built. Catalog build failures mean the static tables
// or the OpenSSL install are broken, which callers treat as a hard startup
// failure.
func (r *Repository) MustGetAllCipherSuites(vers ProtocolVersion) []CipherSuite {
	suites, err := r.GetAllCipherSuites(vers)
	if err != nil {
		panic(err)
	}
	return suites
}
