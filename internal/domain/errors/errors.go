package errors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrAssetUnavailable = errors.New("asset unavailable")
	ErrSendFailed       = errors.New("outbound send failed")
)
