package domain

// Arguments is the ordered list of positional arguments passed through to a wrapped tool.
type Arguments []string

// NewArguments copies args. The result is never nil.
func NewArguments(args []string) Arguments {
	out := make(Arguments, len(args))
	copy(out, args)
	return out
}

// Pop splits off the first argument.
func (a Arguments) Pop() (string, Arguments, bool) {
	if len(a) == 0 {
		return "", Arguments{}, false
	}
	return a[0], NewArguments(a[1:]), true
}
