//go:build !unix

package ansipixels

import (
	"os"
	"syscall"
)

var signalList = []os.Signal{os.Interrupt, syscall.SIGTERM}

func (ap *AnsiPixels) IsResizeSignal(os.Signal) bool { return false }
