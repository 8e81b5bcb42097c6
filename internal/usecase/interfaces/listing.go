package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional or
// transactional write loses against concurrent state. Usecases translate it
// into their own invalid-state errors.
var ErrConditionFailed = errors.New("conditional write failed")

// ListFilter carries the common listing knobs. Cursor is the opaque
// pagination token returned by the previous page (DynamoDB exclusive start
// key, base64 encoded); empty means first page.
type ListFilter struct {
	Status   string
	Validity string
	Search   string
	Limit    int32
	Cursor   string
}
