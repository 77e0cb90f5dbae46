package ports

// Monitor receives coarse-grained progress signals during long-running
// operations. Implementations must tolerate being called from a single
// goroutine only; cancellation is observed between work units, never
// mid-invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=monitor.go -destination=mocks/mock_monitor.go -package=mocks
type Monitor interface {
	// SubTask announces a named unit of work.
	SubTask(label string)
	// Worked reports completed work units for the current sub-task.
	Worked(units int)
}
