// Package user resolves pod users from loosely-typed identifiers and maps them
// to plain records.
//
// Exported API (recommended usage order)
//
//  1. Resolve(ctx, conn, id)
//     Turn nil/resolve.Current(), a numeric resolve.ID, an email, a
//     resolve.Record carrying "user_id", or an already-resolved *pod.User into
//     a *pod.User. Returns nil, not an error, when the user does not exist.
//  2. ResolveByEmail / ResolveByUsername
//     Explicit string lookups. Plain strings passed to Resolve are emails.
//  3. ResolveToRecord / ToRecord
//     Flatten a user into a resolve.Record keyed by the Key* constants.
//  4. SameRealm / CrossRealm
//     Compare the company of a user with the session user. The second result
//     is false when either user cannot be resolved.
//  5. Update(ctx, conn, UpdateInput)
//     Change attributes of an existing user, gated by a capability list.
//
// Operational notes
//
//   - Username and company are not in DefaultMutableFields. Pass them in
//     UpdateInput.Mutable (or POD_USER_MUTABLE_FIELDS via ParseFields) only
//     when the pod is known to accept them.
//   - Update requires user administration entitlements on the session.
package user
