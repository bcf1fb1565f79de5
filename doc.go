// Package podkit is a lightweight index for the helper subpackages in this
// module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/podkit/pod
//     Connection, configuration, typed errors and the REST client.
//   - github.com/spachava753/podkit/resolve
//     Identifier variants and the generic resolver behind user and chat.
//   - github.com/spachava753/podkit/user
//     Resolve users, flatten them to records, compare realms, update users.
//   - github.com/spachava753/podkit/chat
//     Resolve, list and start IM/MIM chats.
//   - github.com/spachava753/podkit/presence
//     Read and set presence categories.
//   - github.com/spachava753/podkit/cmd/podctl
//     Command line front end for the packages above.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/podkit
//   - Then drill in with:
//     go doc github.com/spachava753/podkit/user
//     go doc github.com/spachava753/podkit/resolve
//     go doc github.com/spachava753/podkit/presence
package podkit
