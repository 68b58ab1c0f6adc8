// Package state holds the user profile shown by the relax home shell.
//
// Profile is a plain value. The two ways it changes, a profile load and an
// image pick, both return a new Profile and both resolve the avatar through
// ResolveAvatar, so the precedence rule lives in one place:
//
//	local file path > remote photo URL > none
//
// Because each mutation rebuilds the value instead of patching screen state,
// the order of "load profile" and "pick image" never changes the outcome: a
// picked file always wins.
//
// The profile is owned by the single Bubble Tea model and is not shared
// across goroutines, so no locking is needed.
package state
