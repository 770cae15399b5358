package domain

// WorkItem is an opaque unit of work. It either produces a value or fails;
// the dispatcher never inspects what it does.
type WorkItem func() (any, error)

// TaskDescriptor is an immutable registry entry binding a task id to its
// owning module and an invocable unit of work.
type TaskDescriptor struct {
	ID     string
	Module ModuleKey
	Work   WorkItem
}
