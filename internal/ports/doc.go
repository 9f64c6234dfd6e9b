// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the batch editor core and the outside
// world. They define what the application needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [ParameterCatalog]: Closed, ordered list of parameter identifiers
//   - [BatchAnalyzer]: Evaluates a batch against parameter standards
//   - [ReportRenderer]: Turns an analysis report into a document
//   - [ProposalGenerator]: Produces a water supply proposal document
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters, internal/standards,
// internal/proposal) implement them.
package ports
