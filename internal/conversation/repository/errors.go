package repository

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrFailedToInsert       = errors.New("failed to insert record")
)
