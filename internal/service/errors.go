package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrStorageFull         = errors.New("not enough storage for the item")
	ErrItemExists          = errors.New("sync item with this id already exists")
	ErrItemNotFound        = errors.New("sync item not found")

	ErrSyncInProgress = errors.New("sync already in progress")
	ErrPushFailed     = errors.New("push to sync server failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
