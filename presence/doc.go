// Package presence reads and sets user presence.
//
// Presence values are drawn from a fixed set of categories (Categories).
// Get accepts the same identifiers as user.Resolve; Set only applies to the
// session user.
package presence
