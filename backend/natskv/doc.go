// Package natskv provides a matrix backend over a NATS JetStream
// KeyValue bucket.
//
// A handle's rows are stored as fixed-size row-band chunks under keys
// derived from the handle ID, so matrix data outlives any single process
// and can be produced and consumed by different workers sharing the
// bucket. Chunk payloads carry an xxh3 content checksum that is verified
// on every read.
//
// Every primitive operation fetches the operand chunks, computes locally
// and writes result chunks under a fresh handle ID. How eagerly data moves
// is therefore this backend's concern; the recursion engine never assumes
// locality. A read-through cache keyed by handle ID keeps concurrent
// recursive branches that share an operand from fetching it twice.
package natskv
