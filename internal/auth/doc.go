// Package auth tracks which user is signed in to relax.
//
// Sign-in happens outside the TUI (`relax login`), which stores the user id
// returned by the backend, and optionally a photo URL, in a small TOML file:
//
//	uid = "1700000000"
//	email = "asha@example.com"
//	photo_url = "https://example.com/asha.jpg"
//
// FileProvider reads that file on demand. Anything short of a readable file
// with a non-empty uid counts as signed out; callers never see a partial user.
package auth
