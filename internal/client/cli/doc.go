// Package cli provides the interactive back-office console.
//
// The App wraps the resource services in a small REPL: sign in with
// email and password, inspect the current user, and list, fetch or delete
// records of any resource by name. Results are printed as indented JSON.
//
// When a request ends in a lost session (no refresh token, or the refresh
// itself failed) the console clears the stored credentials and asks the
// operator to log in again.
package cli
