package usecase

import "errors"

// ErrForbidden is returned when the authenticated actor is neither the owner
// of the target record nor an admin. Handlers translate it into a 403.
var ErrForbidden = errors.New("unauthorized access")
