// Package output provides output and error handling for the delorder CLI.
//
// # Printer
//
// The Printer writes the rendered result to stdout and diagnostics to
// stderr:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), color).WithStderr(cmd.ErrOrStderr())
//
//	printer.Result(data) // one write, highlighted when color is on
//	printer.Error(err)   // "Error: <message>"
//
// Color is decided by ResolveColorMode from the --color setting and IsTTY.
// Piped output is plain unless --color always is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad args, results file not found
//	output.ExitSystemError // 2: I/O error
//	output.ExitMalformed   // 3: Invalid JSON, missing keys, index out of range
//	output.ExitInvariant   // 4: First deleted step is not empty
//
// Errors built with the New*Error constructors carry these codes, and
// GetExitCode turns any error returned by the command into a process exit code.
package output
