package transform

import "errors"

// ErrEmptyCompose is returned by Compose when it is called without matrices.
var ErrEmptyCompose = errors.New("transform: nothing to compose")
