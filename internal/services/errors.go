package services

import "errors"

// ErrForbidden is returned when a caller tries to modify or delete a post
// they do not own. The ownership check lives inside the mutation operations
// rather than being left to the caller.
var ErrForbidden = errors.New("caller does not own this post")
