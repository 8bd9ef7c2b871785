// Package hostlist implements Slurm-style host lists: expansion of bracketed
// range expressions, de-duplication, and compression back to range strings.
package hostlist

import (
	"slices"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports"
)

// HostList implements ports.HostList over an in-memory slice.
type HostList struct {
	hosts  []string
	closed bool
}

// New creates a host list holding the expansion of expr, which may be empty.
func New(expr string) (*HostList, error) {
	hl := &HostList{}
	if err := hl.Push(expr); err != nil {
		return nil, err
	}
	return hl, nil
}

// Push expands expr and appends the resulting names.
func (h *HostList) Push(expr string) error {
	if h.closed {
		return domain.ErrHostListClosed
	}
	names, err := Expand(expr)
	if err != nil {
		return err
	}
	h.hosts = append(h.hosts, names...)
	return nil
}

// Count returns the number of names in the list.
func (h *HostList) Count() int {
	return len(h.hosts)
}

// Uniq sorts the list and removes duplicate names.
func (h *HostList) Uniq() {
	slices.SortStableFunc(h.hosts, func(a, b string) int {
		return compareHosts(parseHost(a), parseHost(b))
	})
	h.hosts = slices.Compact(h.hosts)
}

// Shift removes and returns the first name.
func (h *HostList) Shift() (string, bool) {
	if len(h.hosts) == 0 {
		return "", false
	}
	name := h.hosts[0]
	h.hosts = h.hosts[1:]
	return name, true
}

// RangedString returns the compact range-string form of the list.
func (h *HostList) RangedString() string {
	return Compress(h.hosts)
}

// Hosts returns a copy of the remaining names.
func (h *HostList) Hosts() []string {
	return slices.Clone(h.hosts)
}

// Close releases the list. Later pushes fail; other operations see an empty list.
func (h *HostList) Close() error {
	h.closed = true
	h.hosts = nil
	return nil
}

// Factory implements ports.HostListFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewHostList creates a host list holding the expansion of expr.
func (f *Factory) NewHostList(expr string) (ports.HostList, error) {
	hl, err := New(expr)
	if err != nil {
		return nil, err
	}
	return hl, nil
}
