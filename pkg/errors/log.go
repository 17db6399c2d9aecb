package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables timestamps in the output.
	Verbose bool
}

// HandleError logs a WeftError to stderr.
func (h *LogHandler) HandleError(err *WeftError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[weft error] %s %s [%s]: %v\n",
			err.Timestamp.Format("15:04:05.000"), err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[weft error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	}
}
