// Package cli provides the interactive CodeCrafted course browser.
//
// It wires configuration, a backend data source (the course API over gRPC
// or the in-process mock), the session store and the catalog engine, and
// runs a REPL on top of them. The REPL only calls store operations; what
// the user sees is rendered from the snapshots the stores publish.
//
// Commands:
//   - signup / login / logout
//   - courses [all | popular | search <term>]
//   - category <name|any>, price <min> <max|inf>, reset
//   - status, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
