package repository

import "errors"

// ErrNotFound is returned by delete operations when no document matched.
var ErrNotFound = errors.New("repository: document not found")
