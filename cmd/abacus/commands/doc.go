// Package commands defines the abacus CLI.
//
// Commands
//
//   - (root)  Open the interactive calculator
//   - eval    Evaluate expressions from the command line
package commands
