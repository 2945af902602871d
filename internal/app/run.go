package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/crashlab/internal/ctxlog"
	"github.com/vk/crashlab/internal/fault"
)

// crashThreshold is the working value above which the fault routine fires.
// The check is strictly greater than, so 10 itself completes normally.
const crashThreshold = 10

// defaultNumber is the working value used when no argument is given.
const defaultNumber = 5

// Run executes the demo sequence: banner, argument echo, working value
// derivation, pair report, and the conditional fault. It does not return if
// the fault fires.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintln(a.outW, "Starting the program...")

	argv := append([]string{a.config.ProgName}, a.config.Args...)
	fmt.Fprintf(a.outW, "Got %d arguments\n", len(argv))
	for i, arg := range argv {
		fmt.Fprintf(a.outW, "Argument %d: %s\n", i, arg)
	}

	number := defaultNumber
	if len(a.config.Args) > 0 {
		n, err := strconv.Atoi(a.config.Args[0])
		if err != nil {
			return fmt.Errorf("invalid working number %q: %w", a.config.Args[0], err)
		}
		number = n
	}
	a.logger.Debug("Working value determined.", "number", number)

	fmt.Fprintf(a.outW, "Working with number: %d\n", number)

	a.reportPair(ctx, number, number*2)

	fmt.Fprintln(a.outW, "Program completed successfully")
	a.logger.Debug("App.Run method finished.")
	return nil
}

// reportPair prints both integers and trips the configured fault when the
// first is above the crash threshold.
func (a *App) reportPair(ctx context.Context, x, y int) {
	fmt.Fprintf(a.outW, "Arguments: a=%d, b=%d\n", x, y)
	if x > crashThreshold {
		fault.Trip(ctx, a.config.Fault)
	}
}
