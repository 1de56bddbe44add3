// Package app wires application dependencies for the CLI.
//
// It builds the logger, random source, keyring store and services from
// Config, exposing them via the Wire struct for commands to use. App runs the
// demonstration flows that chain a Diffie-Hellman exchange into ElGamal or
// RSA. Default demo parameters live in defaults.go.
package app
