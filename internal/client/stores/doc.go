// Package stores contains the client's state containers: the session, the
// catalog with its favorites, and the user settings.
//
// Each store owns its state behind a mutex and exposes a fixed action set
// plus Snapshot and Subscribe. Actions suspend only on the network and on
// local storage; the lock is never held across those calls, so when two
// actions overlap the one that completes last wins for every field it
// writes. Failures are recorded in the snapshot's Error field instead of
// being returned, except where an action documents an error result.
package stores
