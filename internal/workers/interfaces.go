// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution. Implementations are expected to spawn
// goroutines internally and return immediately. Stop signals the worker to
// finish and waits for in-flight work to complete.
type Worker interface {
	Run()
	Stop()
}
