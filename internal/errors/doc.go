// Package errors provides typed errors with exit codes for readmegen.
//
// # Error Types
//
// ReadmeError is the base error type that wraps an error with an exit code:
//
//	type ReadmeError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess      = 0 // Success
//	ExitGeneralError = 1 // Refusals and generation failures
//	ExitConfigError  = 2 // Malformed .readmegen.toml
//
// Every refusal the tool makes before writing (no repository, identity
// mismatch, missing remote, cancelled prompt) and every failure while
// assembling or writing the document exits with ExitGeneralError.
//
// # Error Constructors
//
//	errors.NoRepository(root)
//	errors.IdentityMismatch(supplied, local)
//	errors.GenerationFailed(err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
