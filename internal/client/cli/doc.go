// Package cli provides the interactive command-line front end of the course
// catalog client.
//
// It wires configuration, local storage, the API client and the stores, and
// runs a REPL that dispatches store actions and prints the resulting state.
// A background watcher pings the server and switches between online and
// offline mode.
//
// Key features:
//   - Register / Login / Logout, whoami, profile refresh and local edits
//   - List courses with category and title filters, show course details
//   - Toggle favorites and summarize them
//   - View and change settings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
