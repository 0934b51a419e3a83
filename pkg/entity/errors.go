package entity

import "errors"

// Store operation errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrDuplicateID = errors.New("record ID already in use")
)

// Schema well-formedness errors.
var (
	ErrEmptyIDPrefix    = errors.New("schema id_prefix must not be empty")
	ErrEmptyFieldName   = errors.New("field name must not be empty")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrUnknownFieldType = errors.New("unknown field type")
	ErrMissingOptions   = errors.New("select field requires options")
)

// Registry errors.
var (
	ErrEntityNotFound  = errors.New("entity type not found")
	ErrDuplicateEntity = errors.New("entity type already registered")
	ErrEmptyEntityName = errors.New("entity name must not be empty")
)
