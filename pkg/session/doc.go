// Package session defines the server-side session record and the Store
// contract it lives behind, together with three ready-to-use stores.
//
// A Record is a string-keyed bag of values with an immutable identifier;
// after a login it always carries the user's identifier under KeyUserID.
// Stores hand out independent copies, and every persistent change is a
// single-field Mutate call, so records never act as shared mutable state
// between requests.
//
// The one failure callers branch on is ErrNotFound: the identifier has no
// live record behind it, either because it never existed or because an
// expiry policy reclaimed it. Everything else a store returns is an
// infrastructure failure to be propagated.
//
// Stores:
//
//   - MemoryStore: mutex-guarded map with an optional TTL sweep; for tests
//     and single-process deployments
//   - FileStore: one JSON document per session with atomic writes; survives
//     restarts without extra infrastructure
//   - RedisStore: one Redis hash per session with key-level TTL; for
//     multi-process deployments
//
// All three enforce identifier uniqueness at creation and apply their TTL
// from the creation time; expiry never slides on access.
package session
