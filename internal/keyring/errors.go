package keyring

import "errors"

// ErrEmptyWorkspaceID is returned when an operation is called with an empty
// workspace identifier. No registry state is mutated in that case.
var ErrEmptyWorkspaceID = errors.New("workspace id must not be empty")
