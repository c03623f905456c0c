// Package app wires application dependencies for the CLI.
//
// Configuration is resolved by viper from defaults, an optional config file,
// ELGAMAL_* environment variables and command flags, in increasing order of
// precedence. NewWire then builds the parameter builder, cipher, signer,
// report store, run service and sweep runner from the resulting Config.
package app
