// Package app is the composition root for relax.
//
// Run loads configuration and preferences, points the standard logger at
// the log file, builds the backend client and session provider, and hands
// them to the UI as narrow collaborators:
//
//	config.Load ──> prefs.Store.Load ──> tea.LogToFile
//	      │
//	      ├──> backend.NewClient   document store + progress store
//	      ├──> auth.FileProvider   signed-in user
//	      └──> ui.Run              blocks until quit or ctx cancel
//
// LoadProfile is the remote profile source: it asks the session for the
// current user, fetches the users document, and returns the account the
// home shell applies to its profile. Any failure comes back as an error;
// the UI logs it and keeps the default "User" profile.
//
// Login, Logout, LoadHistory, and TailLog back the CLI subcommands
// login, logout, history, and logs.
package app
