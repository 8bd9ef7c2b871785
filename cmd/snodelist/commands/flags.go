package commands

import (
	"strconv"

	"go.trai.ch/snodelist/internal/core/domain"
)

// modeFlag is a boolean flag that selects a mode when set. All mode flags
// share one target, so the last one on the command line wins.
type modeFlag struct {
	target *domain.Mode
	mode   domain.Mode
}

func (f *modeFlag) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool(*f.target == f.mode)
}

func (f *modeFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.mode
	}
	return nil
}

func (f *modeFlag) Type() string {
	return "bool"
}

// sourceFlag appends every occurrence to a shared, ordered source list.
type sourceFlag struct {
	sources *[]domain.Source
	kind    domain.SourceKind
}

func (f *sourceFlag) String() string {
	return ""
}

func (f *sourceFlag) Set(s string) error {
	if s == "" {
		if f.kind == domain.SourceEnv {
			return domain.ErrInvalidEnvName
		}
		return domain.ErrInvalidNodeListPath
	}
	*f.sources = append(*f.sources, domain.Source{Kind: f.kind, Value: s})
	return nil
}

func (f *sourceFlag) Type() string {
	if f.kind == domain.SourceEnv {
		return "VAR"
	}
	return "FILE"
}
