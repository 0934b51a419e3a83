package entity

// Store provides uniform record storage for a single entity type. Records
// are kept in insertion order; GetAll returns them in that order. Create and
// Update run schema validation before committing and return FieldErrors on
// failure. Update and Delete on a missing id signal not-found without
// touching the store; Delete reports it as (false, nil), never an error.
//
// A Store is scoped to one session. Concurrent writers are not a supported
// scenario.
type Store interface {
	// GetAll returns copies of every record in insertion order.
	GetAll() ([]Record, error)

	// GetByID returns a copy of the record with the given id.
	// Returns ErrNotFound if no record has that id.
	GetByID(id string) (Record, error)

	// Create validates data, assigns an id ("{prefix}-{NNN}", first free
	// number from 1) when data carries none, stamps created_at, and appends.
	// Returns the stored record, or FieldErrors without appending.
	Create(data Record) (Record, error)

	// Update shallow-merges partial over the existing record, stamps
	// updated_at, revalidates, and commits in place. Returns ErrNotFound if
	// the id does not exist, FieldErrors if the merged record fails
	// validation (the stored record is left unchanged).
	Update(id string, partial Record) (Record, error)

	// Delete removes the first record with the given id. Returns true if a
	// record was removed, false if the id was not found (idempotent no-op).
	Delete(id string) (bool, error)

	// Count returns the number of stored records.
	Count() (int, error)

	// Recent returns up to n records, newest created_at first.
	Recent(n int) ([]Record, error)
}
