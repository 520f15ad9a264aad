package logger

import (
	"errors"
	"fmt"
	"os"
)

// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
var ErrAppNameIsEmpty = errors.New("config log.app_name can not be empty")

// ErrorHandler reports events zerolog failed to write.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "zerolog: could not write event: %v\n", err)
}
