// Package wqsuite wires the water quality suite together: the standards
// registry and its file watcher, the analyzer, the PDF renderer, the proposal
// generator, the report janitor and the session manager.
//
// # Basic Usage
//
//	suite, err := wqsuite.New(wqsuite.Config{OutputDir: "/tmp/reports"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := suite.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer suite.Stop()
//
//	session, err := suite.OpenSession()
//	// dispatch editor actions, run analysis, generate proposals ...
//	suite.CloseSession(session.ID())
//
// # Standards
//
// Without a standards file the built-in catalog is used. A file may override
// limits or add parameters; with WatchStandards set, edits to the file are
// picked up while the suite runs. Reloaded limits apply to the next analysis.
// Sessions keep the parameter list they were opened with.
//
// # Events
//
// Implement [EventHandler] (embedding [BaseEventHandler] for no-op defaults)
// and pass it with [WithEventHandler] to observe state changes and standards
// reloads. Handlers are called synchronously and should return quickly.
package wqsuite
