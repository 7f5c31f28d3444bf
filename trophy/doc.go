// Package trophy reads and rewrites TROPTRNS.DAT, the per-title trophy
// transaction file that records which trophies were unlocked, when, and which
// unlocks have already been synchronized with the remote service.
//
// Open decodes the file into a File whose Ledger holds the unlock entries in
// file order. All mutation goes through the Ledger, which enforces:
//
//   - unlock times are non-decreasing by position after every mutation
//   - trophy ids are unique
//   - synchronized entries are never modified, removed or reordered
//
// A failed mutation leaves the ledger exactly as it was. Save rewrites the
// header, identifiers, counters and the whole entry region in place and then
// flushes the file to stable storage. Save is not crash-atomic; callers that
// need atomicity copy the directory first.
//
// The package is single-threaded by contract: a File and its Ledger must not
// be used from more than one goroutine at a time.
package trophy
