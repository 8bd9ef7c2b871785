// Package machinefile renders an MPI machine file from a host list and a
// run-length encoded task-count spec.
package machinefile

import (
	"context"
	"io"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/engine/lineformat"
	"go.trai.ch/snodelist/internal/engine/taskcount"
	"go.trai.ch/zerr"
)

// HostShifter yields host names in order.
type HostShifter interface {
	Shift() (name string, ok bool)
}

// Generator pairs hosts with task counts and renders one template per pair.
type Generator struct {
	template  *lineformat.Template
	noRepeats bool
}

// NewGenerator creates a Generator for an already parsed template.
func NewGenerator(tmpl *lineformat.Template, noRepeats bool) *Generator {
	return &Generator{
		template:  tmpl,
		noRepeats: noRepeats,
	}
}

// Run writes the machine file to w. Generation stops without error as soon as
// the hosts or the counts run out, or a count is zero or negative, so a
// mismatched spec yields a shorter file. Decoder errors halt generation.
func (g *Generator) Run(ctx context.Context, w io.Writer, hosts HostShifter, counts *taskcount.Decoder) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		host, ok := hosts.Shift()
		if !ok {
			return nil
		}

		count, ok, err := counts.Next()
		if err != nil {
			return zerr.Wrap(err, domain.ErrMachinefileFailed.Error())
		}
		if !ok || count <= 0 {
			return nil
		}

		if err := g.template.Render(w, host, count, g.noRepeats); err != nil {
			return err
		}
	}
}
