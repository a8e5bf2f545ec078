package domain

import "strings"

// Invocation is a single external command run in an explicit directory.
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// NewInvocation creates an invocation of name in dir.
func NewInvocation(dir, name string, args ...string) Invocation {
	return Invocation{Dir: dir, Name: name, Args: args}
}

// Argv returns the full command line.
func (i Invocation) Argv() []string {
	if i.Name == "" {
		return nil
	}
	return append([]string{i.Name}, i.Args...)
}

// String renders the invocation as "dir$ name args...".
func (i Invocation) String() string {
	return i.Dir + "$ " + strings.Join(i.Argv(), " ")
}
