// Package commands defines the elgamal CLI.
//
// Commands
//
//   - params   Generate and validate domain parameters for one bit length
//   - run      Run one encrypt/decrypt/sign/verify exercise
//   - sweep    Run the exercise over a range of bit lengths
//   - show     List stored reports or print one
//
// # Configuration
//
// Every persistent flag can also be set in a config file (--config) or via
// an ELGAMAL_* environment variable; flags win over both. The root command
// resolves the configuration and builds the app before any subcommand runs.
package commands
