package boards

import "errors"

// ErrThreadNotFound is returned when no thread matches the given board and
// identifier.
var ErrThreadNotFound = errors.New("thread not found")

// ErrReplyNotFound is returned when a thread exists but holds no reply
// with the given identifier.
var ErrReplyNotFound = errors.New("reply not found")

// ErrIncorrectPassword is returned when a delete request carries a
// password that does not match the stored hash.
var ErrIncorrectPassword = errors.New("incorrect password")
