// Package taskcount decodes Slurm's run-length encoded task counts, such as
// the value of SLURM_TASKS_PER_NODE ("4(x2),2,1(x3)"), into one count per node.
package taskcount

import (
	"strconv"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/zerr"
)

// Decoder yields per-node task counts from a run-length encoded spec, one
// entry at a time. The zero value is an exhausted decoder.
type Decoder struct {
	spec   string
	cursor int

	// value and remaining describe the active entry; remaining == 0 means
	// the next call parses a new entry at cursor.
	value     int
	remaining int

	err error
}

// New returns a Decoder positioned at the start of spec.
func New(spec string) *Decoder {
	return &Decoder{spec: spec}
}

// Next returns the count for the next node. ok is false once the spec is
// exhausted. A parse error is sticky: every later call returns it again.
func (d *Decoder) Next() (value int, ok bool, err error) {
	if d.err != nil {
		return 0, false, d.err
	}
	if d.remaining == 0 {
		if d.cursor >= len(d.spec) {
			return 0, false, nil
		}
		if err := d.parseEntry(); err != nil {
			d.err = err
			return 0, false, err
		}
	}
	d.remaining--
	return d.value, true, nil
}

// parseEntry reads "INT" or "INT(xINT)" plus an optional trailing comma.
func (d *Decoder) parseEntry() error {
	value, end, ok := d.readUint(d.cursor)
	if !ok {
		return d.fail(domain.ErrInvalidInteger, d.cursor)
	}

	repeat := 1
	switch {
	case end == len(d.spec):
	case d.spec[end] == ',':
		end++
	case d.spec[end] == '(':
		end++
		if end >= len(d.spec) || d.spec[end] != 'x' {
			return d.fail(domain.ErrInvalidRepeat, end)
		}
		end++
		n, after, ok := d.readUint(end)
		if !ok || n <= 0 {
			return d.fail(domain.ErrInvalidRepeat, end)
		}
		end = after
		if end >= len(d.spec) || d.spec[end] != ')' {
			return d.fail(domain.ErrUnexpectedCharacter, end)
		}
		end++
		if end < len(d.spec) {
			if d.spec[end] != ',' {
				return d.fail(domain.ErrUnexpectedCharacter, end)
			}
			end++
		}
		repeat = n
	default:
		return d.fail(domain.ErrUnexpectedCharacter, end)
	}

	d.cursor = end
	d.value = value
	d.remaining = repeat
	return nil
}

// readUint parses the run of decimal digits starting at start.
func (d *Decoder) readUint(start int) (value, end int, ok bool) {
	end = start
	for end < len(d.spec) && d.spec[end] >= '0' && d.spec[end] <= '9' {
		end++
	}
	if end == start {
		return 0, start, false
	}
	v, err := strconv.Atoi(d.spec[start:end])
	if err != nil {
		return 0, start, false
	}
	return v, end, true
}

func (d *Decoder) fail(kind error, offset int) error {
	err := zerr.With(kind, "offset", offset)
	return zerr.With(err, "spec", d.spec)
}
