// Package kv provides the client's local key-value persistence.
//
// # Overview
//
// Repository is a string-keyed byte store used by the session, catalog and
// settings stores. Get returns (nil, nil) for absent keys; Set and Delete are
// idempotent. Failures are reported as *StorageError, which matches
// ErrStorage under errors.Is.
//
// There is no atomicity across separate calls: two Sets may leave one key
// written and the other not if the process dies in between. DeleteKeys is
// the one multi-key operation and runs in a single transaction.
//
// # Implementations
//
//   - SQLiteRepository: the durable store, a single kv table in SQLite
//     (modernc.org/sqlite) created by embedded goose migrations; see Open.
//   - MemoryRepository: a map-backed store for tests and ephemeral runs,
//     with fault injection.
//
// Typical Usage
//
//	repo, err := kv.Open(ctx, "data/catalog.db")
//	if err != nil { ... }
//	defer repo.Close()
//	_ = repo.Set(ctx, common.StorageKeyToken, []byte(token))
//	v, _ := repo.Get(ctx, common.StorageKeyToken)
package kv
