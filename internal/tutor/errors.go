package tutor

import "errors"

// ErrSessionNotFound is returned for an unknown or already-closed
// session id. It is the only observable failure of the public surface;
// gateway trouble always degrades to an in-band response instead.
var ErrSessionNotFound = errors.New("session not found")
