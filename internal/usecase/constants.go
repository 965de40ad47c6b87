package usecase

import "errors"

const (
	opCreate = "create"
	opEdit   = "edit"
	opDelete = "delete"
)

var (
	// ErrIndexOutOfRange is returned for a closing or machine position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotPersisted means the in-memory collection changed but writing it to
	// disk failed, so memory and the store file may now differ.
	ErrNotPersisted = errors.New("change not persisted")
)
