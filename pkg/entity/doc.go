// Package entity defines the declarative schema format, record type,
// validation rules, and storage contract shared by every module of the
// dashboard. A Schema drives validation, ID assignment, form rendering,
// and filtering for one entity type; a Store holds its records.
package entity
