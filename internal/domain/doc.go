// Package domain contains the core value types and errors for ircsend.
//
// This package is the innermost layer. It has no dependencies on transports,
// logging or configuration and contains only the rules that every command
// helper relies on.
//
// # Types
//
//   - [Verb]: The closed set of simple passthrough verbs (JOIN, PART, ...)
//   - [Descriptor]: A named command and the wire token it transmits
//   - [ChoiceSet]: A non-empty list of canned reply phrases
//   - [BatchLine]: The accumulator used when batching arguments under a budget
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
