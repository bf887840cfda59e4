// Package cli translates command-line arguments into an app.Config. It owns
// the flag surface, the usage text, and the ExitError type that carries
// process exit codes out of the run function.
package cli
