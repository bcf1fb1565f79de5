// Package resolve turns loosely-typed identifiers into canonical pod entities.
//
// Callers pass whatever they have on hand: nothing (the current identity), a
// numeric id, an email, a username, a stream id, an already-resolved entity,
// or a record decoded from JSON/YAML that carries an id field. A Resolver
// built from per-entity Strategies dispatches on the variant and returns the
// entity, or nil when nothing matches.
//
// Dispatch order
//
//  1. nil or Current() → Strategies.Current
//  2. Entity → returned as-is, no remote call
//  3. Record → the value under Strategies.RecordKey, resolved again (at most
//     eight levels deep)
//  4. ID → Strategies.ByID
//  5. Key, Email, Username → Strategies.ByKey, ByEmail, ByUsername
//  6. Null() → absent
//
// Fault handling
//
//   - Lookups that fail with a pod not-found error resolve to absent.
//   - Every other lookup error is returned unchanged.
//   - A variant the resolver has no strategy for is an invalid-argument error.
//
// Use FromValue to normalize decoded data and ParseIdentifier for text typed
// by a person (CLI arguments, chat commands).
package resolve
