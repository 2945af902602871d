// Package fault holds the intentional crash routines. Every routine here
// terminates the process by design; none of them are recoverable and none
// of them return.
package fault
