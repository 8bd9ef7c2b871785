package source_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snodelist/internal/adapters/source"
	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newTestReader(t *testing.T, opts ...source.Option) *source.Reader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return source.NewReader(mocks.NewMockLogger(ctrl), opts...)
}

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestReader_Read_Expression(t *testing.T) {
	r := newTestReader(t)

	got, err := r.Read(domain.Source{Kind: domain.SourceExpression, Value: "n[1-2]"})
	require.NoError(t, err)
	assert.Equal(t, []string{"n[1-2]"}, got)
}

func TestReader_Read_Env(t *testing.T) {
	r := newTestReader(t, source.WithLookupEnv(envOf(map[string]string{
		"SLURM_JOB_NODELIST": "n[000-003]",
		"EMPTY":              "",
	})))

	tests := []struct {
		name string
		env  string
		want []string
	}{
		{name: "set", env: "SLURM_JOB_NODELIST", want: []string{"n[000-003]"}},
		{name: "empty", env: "EMPTY", want: nil},
		{name: "unset", env: "MISSING", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Read(domain.Source{Kind: domain.SourceEnv, Value: tt.env})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := r.Read(domain.Source{Kind: domain.SourceEnv})
	assert.Equal(t, domain.ErrInvalidEnvName, err)
}

func TestReader_Lookup(t *testing.T) {
	r := newTestReader(t, source.WithLookupEnv(envOf(map[string]string{"A": "1"})))

	v, ok := r.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = r.Lookup("B")
	assert.False(t, ok)
}

func TestReader_Read_File(t *testing.T) {
	fsys := fstest.MapFS{
		"nodes.txt": &fstest.MapFile{Data: []byte(
			"# compute nodes\n" +
				"n[000-003]  n010\n" +
				"\n" +
				"   g[1-2] # gpu nodes\n" +
				"login#1\n",
		)},
		"empty.txt": &fstest.MapFile{Data: nil},
	}
	r := newTestReader(t, source.WithFS(fsys))

	got, err := r.Read(domain.Source{Kind: domain.SourceFile, Value: "nodes.txt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"n[000-003]", "n010", "g[1-2]", "login#1"}, got)

	got, err = r.Read(domain.Source{Kind: domain.SourceFile, Value: "empty.txt"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_Read_FileErrors(t *testing.T) {
	r := newTestReader(t, source.WithFS(fstest.MapFS{}))

	_, err := r.Read(domain.Source{Kind: domain.SourceFile, Value: "missing.txt"})
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNodeListOpen.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "missing.txt", zErr.Metadata()["path"])

	_, err = r.Read(domain.Source{Kind: domain.SourceFile})
	assert.Equal(t, domain.ErrInvalidNodeListPath, err)
}

func TestReader_Read_Stdin(t *testing.T) {
	r := newTestReader(t, source.WithStdin(strings.NewReader("a1 a2\n# b1\na3\n")))

	got, err := r.Read(domain.Source{Kind: domain.SourceFile, Value: domain.StdinPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "a3"}, got)
}

func TestReader_Read_UnknownKind(t *testing.T) {
	r := newTestReader(t)

	_, err := r.Read(domain.Source{Kind: domain.SourceKind(7), Value: "x"})
	require.ErrorContains(t, err, domain.ErrUnknownSourceKind.Error())
}
