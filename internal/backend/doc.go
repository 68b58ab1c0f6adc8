// Package backend is the HTTP client for the relax user API.
//
// The API exposes user profiles, login, and per-day practice history under
// /api/users. Client implements two narrow interfaces so callers (and tests)
// depend only on what they use:
//
//   - DocumentStore: Get(ctx, "users", id) returns the profile as a
//     schemaless Document; the "name" field is the display name.
//   - ProgressStore: FetchProgress and UpdateProgress read and merge the
//     date-keyed practice history.
//
// Every request carries a User-Agent and a fresh X-Request-ID. The id is
// included in returned errors so failures logged by the UI can be matched
// with server logs. A 404 is reported as ErrNotFound; other 4xx/5xx replies
// include the backend's message when it sends one.
package backend
