package sqlite

// Task is a row of the tasks table. Seq orders rows by insertion; ID is
// the public task id and is not unique on its own.
type Task struct {
	Seq       int64
	ID        int64
	Name      string
	Completed bool
}
