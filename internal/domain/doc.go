// Package domain contains the core entities and value objects for wqsuite.
//
// This package is the innermost layer of the application. It has no
// dependencies on infrastructure concerns (terminal, file system, PDF,
// logging) and contains only data and the rules that belong to it.
//
// # Entities
//
//   - [Entry]: one (parameter, lab value) pair in a working batch
//   - [Finding]: one severity-tagged line of analysis output
//   - [Report]: structured analysis result handed to a report renderer
//   - [ProposalInputs]: the inputs of the water supply proposal workflow
//
// # Design Principles
//
// Domain values are:
//   - Plain structs, copied by value
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
