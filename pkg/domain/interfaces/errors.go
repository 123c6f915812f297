package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by repositories when the requested document
// does not exist. Backends wrap this sentinel so callers can detect the
// condition with errors.Is regardless of the storage implementation.
var ErrNotFound = goerr.New("not found")
