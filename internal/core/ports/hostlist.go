package ports

// HostList is an ordered, mutable list of host names built from Slurm-style
// host expressions such as "n[000-002,005],g100".
//
//go:generate mockgen -source=hostlist.go -destination=mocks/mock_hostlist.go -package=mocks
type HostList interface {
	// Push expands expr and appends the resulting names.
	Push(expr string) error
	// Count returns the number of names in the list.
	Count() int
	// Uniq sorts the list and removes duplicate names.
	Uniq()
	// Shift removes and returns the first name. ok is false when the list is empty.
	Shift() (name string, ok bool)
	// RangedString returns the compact range-string form of the whole list.
	RangedString() string
	// Close releases the list.
	Close() error
}

// HostListFactory creates host lists.
type HostListFactory interface {
	// NewHostList creates a host list holding the expansion of expr, which may be empty.
	NewHostList(expr string) (HostList, error)
}
