// Package commands defines the cryptalg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - calc           Arithmetic on decimal integers (add, sub, mul, div, mod, pow, inv, gcd)
//   - encode         Map text to its radix-256 integer
//   - decode         Map an integer back to text
//   - dh             Run a Diffie-Hellman exchange
//   - elgamal        Run a DH exchange followed by an ElGamal round trip
//   - rsa keygen     Derive an RSA key pair and store it in the keyring
//   - rsa encrypt    Encrypt to a stored public key
//   - rsa decrypt    Decrypt with a stored, passphrase-sealed private key
//   - rsa list       List stored keys
//   - rsa delete     Remove a stored key
//   - rsa demo       Run a DH exchange followed by an RSA round trip
//
// # Implementation
//
// The root command builds the dependency graph (logger, random source,
// keyring store and services) before any subcommand runs. Every number on
// the command line and in the output is plain decimal text.
package commands
