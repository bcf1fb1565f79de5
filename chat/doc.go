// Package chat resolves IM and MIM conversations by stream id and starts new
// ones from user identifiers.
//
// Rooms are streams too, but their membership changes over time; Resolve
// treats them as absent.
package chat
