// Package pod is the collaborator layer underneath podkit: a typed error
// taxonomy, environment configuration, the collaborator interfaces the
// helpers depend on, and a REST client that implements them.
//
// Primary types
//
//   - Connection: an authenticated session handle. Helpers in the user, chat
//     and presence packages only read its sub-clients.
//   - UserDirectory, StreamDirectory, PresenceService: collaborator
//     interfaces. Client implements all three; pod/podmock has gomock mocks.
//   - Client: REST client for /pod/v1, /pod/v2 and /pod/v3 endpoints. Every
//     request carries the sessionToken header, an optional keyManagerToken
//     header and a fresh X-Trace-Id.
//   - Config: POD_* environment settings, loaded with LoadConfig.
//   - Error: typed error with an ErrorCode. HTTP statuses map to codes:
//     400 invalid_argument, 401 unauthorized, 403 forbidden, 404 not_found,
//     5xx unavailable. Single-entity reads that return no body are not_found.
//
// Operational notes
//
//   - Client never retries and never caches.
//   - Transport failures are wrapped with fmt.Errorf and carry no ErrorCode.
//   - Set PODKIT_LIVE_TEST=1 with POD_URL and POD_SESSION_TOKEN to run the live
//     tests. They flip the session user's presence and restore it.
package pod
