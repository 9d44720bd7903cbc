// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// ContactMessage is the predicate function for contactmessage builders.
type ContactMessage func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// LedgerEntry is the predicate function for ledgerentry builders.
type LedgerEntry func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
