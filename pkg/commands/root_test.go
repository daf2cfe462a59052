package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sysinfo/pkg/errors"
	"sysinfo/pkg/logging"
)

func newTestCmd() (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	root := NewRootCmd(logging.Nop())
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)

	return out, errOut, func(args ...string) error {
		root.SetArgs(args)
		return root.Execute()
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, execute := newTestCmd()

	err := execute("--foo")

	var usageErr apperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Message, "--foo")
	assert.Equal(t, apperrors.ExitErrorUsage, apperrors.ExitCode(err))
}

func TestMalformedIntervalIsUsageError(t *testing.T) {
	_, _, execute := newTestCmd()

	err := execute("--live", "--interval", "soon")

	var usageErr apperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestLiveCombinedWithExportIsUsageError(t *testing.T) {
	_, _, execute := newTestCmd()

	err := execute("--live", "--export", "out.json")

	var usageErr apperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Message, "--export")
}

func TestLiveCombinedWithDisplayIsUsageError(t *testing.T) {
	_, _, execute := newTestCmd()

	err := execute("--live", "--display")

	var usageErr apperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
}

func TestPositionalArgsRejected(t *testing.T) {
	_, _, execute := newTestCmd()

	err := execute("display")

	var usageErr apperrors.UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Message, "display")
	assert.Equal(t, apperrors.ExitErrorUsage, apperrors.ExitCode(err))
}

func TestNoActionPrintsHelp(t *testing.T) {
	out, _, execute := newTestCmd()

	err := execute()

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--display")
}

func TestHelpFlag(t *testing.T) {
	out, _, execute := newTestCmd()

	err := execute("--help")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "sysinfo reads host system metrics")
}
