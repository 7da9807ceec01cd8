package drawtest

import "fmt"

// Bugs is a uidraw.BugReporter that keeps every report.
type Bugs struct {
	Impl []string
	User []string
}

// ImplBug implements uidraw.BugReporter.
func (b *Bugs) ImplBug(format string, args ...any) {
	b.Impl = append(b.Impl, fmt.Sprintf(format, args...))
}

// UserBug implements uidraw.BugReporter.
func (b *Bugs) UserBug(format string, args ...any) {
	b.User = append(b.User, fmt.Sprintf(format, args...))
}
