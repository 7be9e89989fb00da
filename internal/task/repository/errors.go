package repository

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
