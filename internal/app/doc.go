// Package app contains the core host logic. It defines the main App struct,
// its configuration, and the sequential plugin lifecycle, decoupled from any
// specific entrypoint like a CLI.
package app
