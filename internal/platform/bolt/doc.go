// Package bolt implements the store interfaces over a bbolt database
// file: a client-resident key-value store of namespaced string keys to
// JSON documents, all in a single bucket.
//
// Deserialization never fails the caller. A document that is missing or
// does not unmarshal resolves to the entity's typed fallback, and the
// revival rules (timestamp defaulting, companion illustration backfill)
// run on every read so documents written by an older schema stay usable.
package bolt
