package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/snodelist/internal/adapters/hostlist"
	"go.trai.ch/snodelist/internal/adapters/source"
	"go.trai.ch/snodelist/internal/app"
	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"snodelist": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			env.Setenv("XDG_CONFIG_HOME", env.WorkDir+"/.config")
			return nil
		},
	})
}

func newProvider(t *testing.T, env map[string]string) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(domain.Defaults{}, nil).AnyTimes()

	reader := source.NewReader(mockLogger, source.WithLookupEnv(func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}))
	application := app.New(mockLoader, hostlist.NewFactory(), reader, mockLogger)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}, mockLogger
}

// TestRun_Success verifies that run returns 0 and writes tool output to stdout.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t, nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-c", "n1,n2,n3"}, stdout, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "n[1-3]\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// TestRun_Machinefile verifies machine-file generation from the job environment.
func TestRun_Machinefile(t *testing.T) {
	provider, _ := newProvider(t, map[string]string{
		"SLURM_JOB_NODELIST":   "n[000-002]",
		"SLURM_TASKS_PER_NODE": "2,1(x2)",
	})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-m"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "n000:2\nn001\nn002\n", stdout.String())
}

// TestRun_InitializationError verifies that run returns EINVAL when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-c"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 22, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that errors are logged and mapped to EINVAL.
func TestRun_ExecutionError(t *testing.T) {
	provider, mockLogger := newProvider(t, map[string]string{"SLURM_JOB_NODELIST": "n1"})
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-m"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 22, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_BadFlag verifies that flag errors exit with EINVAL.
func TestRun_BadFlag(t *testing.T) {
	provider, mockLogger := newProvider(t, nil)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"--bogus"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 22, exitCode)
}

// TestRun_AppOptions verifies that options are applied to the App.
func TestRun_AppOptions(t *testing.T) {
	provider, _ := newProvider(t, nil)

	redirected := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"a[1-2]"}, new(bytes.Buffer), new(bytes.Buffer), provider,
		func(a *app.App) { a.WithOutput(redirected) })

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "a1\na2\n", redirected.String())
}
