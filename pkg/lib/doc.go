// Package lib provides a Go SDK for reporting task progress to a consumer
// process over line-delimited JSON snapshots.
//
// A producer registers named tasks on a [Reporter] and moves them through
// their lifecycle; after every state change the reporter emits one line with
// a JSON array of all active tasks, ready to be parsed by a cooperating
// process reading the stream (a UI, a wrapper script, a dashboard).
//
// # Quick Start
//
//	reporter, err := lib.New(lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// A spinner task (no known total).
//	reporter.AddTask(lib.NewTask("Logging in"))
//	reporter.Start()
//	reporter.Finish()
//
//	// An iterative task (known total).
//	reporter.AddTask(lib.NewTask("Scraping").WithTotal(4))
//	reporter.Start()
//	for i := 0; i < 4; i++ {
//	    reporter.Increment(1)
//	}
//	reporter.Finish()
//
// # Task lifecycle
//
// Tasks move pending -> running (spinner) or pending -> in_progress
// (iterative) -> finished or error. Finished and errored tasks leave the
// active set immediately: they never appear in the snapshot emitted by the
// call that terminated them.
//
// Operations without an explicit task name target the current task: the
// oldest task still active, in registration order.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNonexistentTask]: the referenced task has no active entry.
//   - [ErrTaskAlreadyExists]: a task with the same name is already active.
//   - [ErrTaskAlreadyStarted]: start on a task that is not pending.
//   - [ErrInvalidTaskType]: increment on a spinner task.
//   - [ErrTaskAlreadyFinished]: an operation on a task already at its end.
//
// # Thread Safety
//
// A [Reporter] is synchronous and NOT safe for concurrent use. Two valid
// ports for concurrent producers:
//
//   - wrap it: [NewSync] returns a [SyncReporter] holding one lock around
//     every operation;
//   - confine it: keep the reporter in a single goroutine and send it
//     operations over a channel.
package lib
