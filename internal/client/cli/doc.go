// Package cli implements the interactive terminal front end of the Prism
// client.
//
// The REPL reads one command per line and dispatches to handlers on App.
// Handlers do their own prompting (input.go), report outcomes as one-line
// toasts, and never let an error escape to the loop. Tab gating mirrors the
// view router: generation commands redirect anonymous users to login, admin
// commands additionally require the admin role.
package cli
