// Package source resolves host-list sources (literal expressions, environment
// variables, node-list files) into host expressions.
package source

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// maxLineSize bounds a single node-list line.
const maxLineSize = 16 << 20

// Reader implements ports.SourceReader.
type Reader struct {
	logger ports.Logger
	fsys   fs.FS
	stdin  io.Reader
	lookup func(string) (string, bool)
}

// Option configures a Reader.
type Option func(*Reader)

// WithFS sets the filesystem node-list files are read from.
func WithFS(fsys fs.FS) Option {
	return func(r *Reader) { r.fsys = fsys }
}

// WithStdin sets the reader used for the "-" node-list path.
func WithStdin(stdin io.Reader) Option {
	return func(r *Reader) { r.stdin = stdin }
}

// WithLookupEnv sets the environment lookup function.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(r *Reader) { r.lookup = lookup }
}

// NewReader creates a Reader over the process environment, the OS
// filesystem, and standard input.
func NewReader(logger ports.Logger, opts ...Option) *Reader {
	r := &Reader{
		logger: logger,
		fsys:   OSFS{},
		stdin:  os.Stdin,
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the value of an environment variable.
func (r *Reader) Lookup(name string) (string, bool) {
	return r.lookup(name)
}

// Read returns the host expressions held by src.
func (r *Reader) Read(src domain.Source) ([]string, error) {
	switch src.Kind {
	case domain.SourceExpression:
		return []string{src.Value}, nil
	case domain.SourceEnv:
		if src.Value == "" {
			return nil, domain.ErrInvalidEnvName
		}
		if v, ok := r.lookup(src.Value); ok && v != "" {
			return []string{v}, nil
		}
		return nil, nil
	case domain.SourceFile:
		return r.readFile(src.Value)
	default:
		return nil, zerr.With(domain.ErrUnknownSourceKind, "kind", int(src.Kind))
	}
}

func (r *Reader) readFile(path string) ([]string, error) {
	if path == "" {
		return nil, domain.ErrInvalidNodeListPath
	}

	if path == domain.StdinPath {
		if f, ok := r.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			r.logger.Warn("reading node list from the terminal, end input with Ctrl-D")
		}
		return parseNodeList(r.stdin, path)
	}

	f, err := r.fsys.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNodeListOpen.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	return parseNodeList(f, path)
}

// parseNodeList splits the input into whitespace-separated expressions. A
// word starting with '#' comments out the rest of its line.
func parseNodeList(in io.Reader, path string) ([]string, error) {
	var exprs []string

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			if strings.HasPrefix(word, "#") {
				break
			}
			exprs = append(exprs, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNodeListRead.Error()), "path", path)
	}

	return exprs, nil
}
