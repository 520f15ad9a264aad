package crud

import "errors"

// ErrNoModels is returned by Generate when no model was added.
var ErrNoModels = errors.New("at least one model is needed to generate stories")
