package fault

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/vk/crashlab/internal/ctxlog"
)

// Mode names one of the intentional crash routines.
type Mode string

const (
	ModeReadOnly Mode = "readonly"
	ModeNil      Mode = "nil"
	ModeIndex    Mode = "index"
	ModeDivZero  Mode = "divzero"
	ModeAbort    Mode = "abort"
)

// ParseMode validates a fault mode name from user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReadOnly, ModeNil, ModeIndex, ModeDivZero, ModeAbort:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid fault mode %q: must be 'readonly', 'nil', 'index', 'divzero', or 'abort'", s)
}

// Trip runs the crash routine for the given mode. It does not return for
// any valid mode; an unknown mode falls through to the read-only write.
func Trip(ctx context.Context, mode Mode) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Tripping fault.", "mode", mode)

	switch mode {
	case ModeNil:
		NilDereference()
	case ModeIndex:
		IndexOutOfRange()
	case ModeDivZero:
		DivideByZero()
	case ModeAbort:
		Abort()
	default:
		ReadOnlyWrite()
	}
}

// protectedText backs ReadOnlyWrite. The linker places string data in a
// read-only mapping.
const protectedText = "static string"

// ReadOnlyWrite stores 42 into the first byte of a string constant. The
// store faults on platforms that write-protect string data; elsewhere it
// is an undefined illegal write.
func ReadOnlyWrite() {
	data := unsafe.Slice(unsafe.StringData(protectedText), len(protectedText))
	data[0] = 42
}

// NilDereference stores through a nil pointer.
func NilDereference() {
	var p *int
	*p = 0
}

// IndexOutOfRange indexes one past the end of a slice.
func IndexOutOfRange() {
	values := []int{10, 20, 30}
	fmt.Println(values[len(values)])
}

// DivideByZero divides by a zero loaded from a variable so the compiler
// cannot reject the expression.
func DivideByZero() {
	zero := 0
	fmt.Println(42 / zero)
}

// Abort panics unconditionally.
func Abort() {
	panic("abort requested")
}
