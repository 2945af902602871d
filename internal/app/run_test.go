package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/crashlab/internal/fault"
)

// newTestApp builds an App writing its transcript to the returned buffer.
func newTestApp(t *testing.T, args ...string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg, err := NewConfig(Config{
		ProgName:  "crashlab",
		Args:      args,
		LogFormat: "text",
		LogLevel:  "info",
		Fault:     fault.ModeReadOnly,
	})
	require.NoError(t, err, "test config should validate")

	out := &bytes.Buffer{}
	return NewApp(out, io.Discard, cfg), out
}

func TestRun_DefaultWorkingValue(t *testing.T) {
	t.Parallel()

	demo, out := newTestApp(t)

	err := demo.Run(context.Background())
	require.NoError(t, err)

	want := strings.Join([]string{
		"Starting the program...",
		"Got 1 arguments",
		"Argument 0: crashlab",
		"Working with number: 5",
		"Arguments: a=5, b=10",
		"Program completed successfully",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_WorkingValueFromArgument(t *testing.T) {
	t.Parallel()

	demo, out := newTestApp(t, "7")

	err := demo.Run(context.Background())
	require.NoError(t, err)

	want := strings.Join([]string{
		"Starting the program...",
		"Got 2 arguments",
		"Argument 0: crashlab",
		"Argument 1: 7",
		"Working with number: 7",
		"Arguments: a=7, b=14",
		"Program completed successfully",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_EchoesEveryArgument(t *testing.T) {
	t.Parallel()

	demo, out := newTestApp(t, "3", "alpha", "beta")

	err := demo.Run(context.Background())
	require.NoError(t, err)

	transcript := out.String()
	require.Contains(t, transcript, "Got 4 arguments")
	require.Contains(t, transcript, "Argument 0: crashlab")
	require.Contains(t, transcript, "Argument 1: 3")
	require.Contains(t, transcript, "Argument 2: alpha")
	require.Contains(t, transcript, "Argument 3: beta")
}

func TestRun_ZeroIsAValidWorkingValue(t *testing.T) {
	t.Parallel()

	demo, out := newTestApp(t, "0")

	err := demo.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, out.String(), "Working with number: 0")
	require.Contains(t, out.String(), "Arguments: a=0, b=0")
	require.Contains(t, out.String(), "Program completed successfully")
}

func TestRun_ThresholdItselfDoesNotCrash(t *testing.T) {
	t.Parallel()

	// 10 is not strictly greater than the threshold, so this must complete
	// in-process without tripping the fault.
	demo, out := newTestApp(t, "10")

	err := demo.Run(context.Background())
	require.NoError(t, err)
	require.Contains(t, out.String(), "Arguments: a=10, b=20")
	require.Contains(t, out.String(), "Program completed successfully")
}

func TestRun_NonNumericArgumentFails(t *testing.T) {
	t.Parallel()

	demo, out := newTestApp(t, "abc")

	err := demo.Run(context.Background())
	require.Error(t, err, "garbage input must not be mistaken for a working value")
	require.Contains(t, err.Error(), `invalid working number "abc"`)

	// The echo happens before derivation; the success line must not.
	transcript := out.String()
	require.Contains(t, transcript, "Argument 1: abc")
	require.NotContains(t, transcript, "Working with number:")
	require.NotContains(t, transcript, "Program completed successfully")
}

func TestNewConfig_RequiresProgName(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "ProgName")
}
