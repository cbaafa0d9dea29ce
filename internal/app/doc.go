// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: load or generate mazes,
// solve each one, report and render the results. It is decoupled from any
// specific entrypoint like a CLI or server.
package app
