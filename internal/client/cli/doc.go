// Package cli provides the interactive doorbell command-line client.
//
// It wires configuration, the encrypted credential store, the REST client
// and the auth services, then runs a REPL whose commands depend on the
// current screen. Typical flow: bootstrap the session (silent login with
// the stored credentials), start a background connectivity watcher, and
// execute user commands.
//
// Screens and their commands:
//   - login: login, register, forgot
//   - register: register (retry), back
//   - otp: verify <code>, resend
//   - forgot / reset: forgot, reset, back
//   - home: devices [active], device <id>, device add|rename|rm|grant,
//     events [n|all|device <id>], event <id>, whoami, logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
