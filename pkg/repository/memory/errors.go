package memory

import "github.com/chatpad-dev/chatpad/pkg/domain/interfaces"

// ErrNotFound is returned when the requested document does not exist
var ErrNotFound = interfaces.ErrNotFound
