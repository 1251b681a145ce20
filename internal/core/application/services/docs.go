// Package services contains the business-rule layer of the application.
//
// Each service orchestrates one or more repositories declared as ports and
// enforces cross-aggregate invariants: the order service checks that the
// referenced customer exists before any order write is attempted. Services
// are the layer that converts a repository "absent" result into an explicit
// not-found domain error; repositories themselves only report presence.
//
// Services never reinterpret a repository's unknown failure and never format
// user-facing text; the transport adapter owns the error-to-response mapping.
package services
