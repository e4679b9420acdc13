// Package store defines the persistence interfaces for the client-resident
// document store and the error taxonomy shared by its implementations.
//
// The store maps namespaced string keys to serialized JSON documents.
// Reads are defensive: a missing or malformed document resolves to a
// type-appropriate fallback (nil singleton, empty list) rather than an
// error; only real I/O failures surface to callers.
//
// Single-writer contract: the store offers no cross-process locking or
// transaction isolation. List appends are read-modify-write, so two
// independent processes appending to the same document key can silently
// lose one entry. Callers must run derivation and storage on one logical
// thread of control.
package store
