// Package errors provides structured, coded errors for RUIX.
//
// Every error carries a short code (e.g. "R002") that maps to a category,
// a one-line message and a longer explanation. Programming errors raised by
// the reactive core (a missing capability, an invalid tree node) are panics
// carrying an *Error; operational failures (configuration, I/O, publishing)
// are returned as *Error values wrapping the underlying cause.
//
// # Categories
//
//   - runtime: misuse of the reactive model or the view layer
//   - config: ruix.yaml loading and validation
//   - cli: command line failures
//   - io: preview server and publishing failures
//
// # Usage
//
//	err := errors.New("R101").
//	    WithDetail("no ruix.yaml in /srv/site").
//	    WithSuggestion("create ruix.yaml or pass --config")
//
//	fmt.Println(err.Format())
package errors
