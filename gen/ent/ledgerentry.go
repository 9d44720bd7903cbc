// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Qyuzet/onecarbon/gen/ent/company"
	"github.com/Qyuzet/onecarbon/gen/ent/ledgerentry"
	"github.com/google/uuid"
)

// LedgerEntry is the model entity for the LedgerEntry schema.
type LedgerEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Deposits holds the value of the "deposits" field.
	Deposits []int64 `json:"deposits,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID string `json:"transaction_id,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LedgerEntryQuery when eager-loading is set.
	Edges        LedgerEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LedgerEntryEdges holds the relations/edges for other nodes in the graph.
type LedgerEntryEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LedgerEntryEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LedgerEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldDeposits:
			values[i] = new([]byte)
		case ledgerentry.FieldTransactionID:
			values[i] = new(sql.NullString)
		case ledgerentry.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case ledgerentry.FieldID, ledgerentry.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LedgerEntry fields.
func (_m *LedgerEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ledgerentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ledgerentry.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case ledgerentry.FieldDeposits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deposits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deposits); err != nil {
					return fmt.Errorf("unmarshal field deposits: %w", err)
				}
			}
		case ledgerentry.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				_m.TransactionID = value.String
			}
		case ledgerentry.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LedgerEntry.
// This includes values selected through modifiers, order, etc.
func (_m *LedgerEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the LedgerEntry entity.
func (_m *LedgerEntry) QueryCompany() *CompanyQuery {
	return NewLedgerEntryClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this LedgerEntry.
// Note that you need to call LedgerEntry.Unwrap() before calling this method if this LedgerEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LedgerEntry) Update() *LedgerEntryUpdateOne {
	return NewLedgerEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LedgerEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LedgerEntry) Unwrap() *LedgerEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LedgerEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LedgerEntry) String() string {
	var builder strings.Builder
	builder.WriteString("LedgerEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("deposits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deposits))
	builder.WriteString(", ")
	builder.WriteString("transaction_id=")
	builder.WriteString(_m.TransactionID)
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LedgerEntries is a parsable slice of LedgerEntry.
type LedgerEntries []*LedgerEntry
