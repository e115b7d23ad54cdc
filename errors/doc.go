// Package errors provides structured error types for the classmeta library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: parameter path, Go/JVM type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindUnsupportedValue).
//		Path("policy").
//		GoType("map[string]int").
//		Detail("no matching value variant").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeNotFound("com.example.RetentionPolicy")
//	err := errors.ConstantNotFound("com.example.RetentionPolicy", "RUNTIME")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
