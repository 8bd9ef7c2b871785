package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/snodelist/internal/core/domain"
)

func TestNewOptions(t *testing.T) {
	t.Run("built-in defaults", func(t *testing.T) {
		opts := domain.NewOptions(domain.Defaults{})

		assert.Equal(t, domain.ModeExpand, opts.Mode)
		assert.Equal(t, "%h%[:]C", opts.Format)
		assert.Equal(t, "\n", opts.Delimiter)
		assert.Equal(t, "SLURM_JOB_NODELIST", opts.NodeListEnv)
		assert.Equal(t, "SLURM_TASKS_PER_NODE", opts.TaskCountEnv)
		assert.Empty(t, opts.Sources)
	})

	t.Run("config values win over built-ins", func(t *testing.T) {
		opts := domain.NewOptions(domain.Defaults{
			Format:      "%h:%c",
			NodeListEnv: "NODES",
		})

		assert.Equal(t, "%h:%c", opts.Format)
		assert.Equal(t, "\n", opts.Delimiter)
		assert.Equal(t, "NODES", opts.NodeListEnv)
		assert.Equal(t, "SLURM_TASKS_PER_NODE", opts.TaskCountEnv)
	})
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "expand", domain.ModeExpand.String())
	assert.Equal(t, "compress", domain.ModeCompress.String())
	assert.Equal(t, "machinefile", domain.ModeMachinefile.String())
	assert.Equal(t, "unknown", domain.Mode(9).String())
}
