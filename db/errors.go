package db

type tableError string

var _ error = tableError("")

func (err tableError) Error() string {
	return string(err)
}

const (
	ErrInvalidArgument = tableError("bucket count must be greater than zero")
	ErrNotFound        = tableError("item not found in table")
	ErrNotMember       = tableError("node does not belong to this chain")
	ErrAtEnd           = tableError("cursor is at end")
	ErrStale           = tableError("cursor used after table was modified")
)
