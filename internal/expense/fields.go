// Package expense implements the normalization pipeline for House
// expenditure CSV files: header-to-column mapping, per-field value
// rules, and row-to-record assembly. This package has no I/O
// dependencies and can be driven by any frontend.
package expense

// Field is the canonical, database-facing name for an expenditure column.
type Field string

const (
	FieldBioguideID        Field = "bioguide_id"
	FieldOffice            Field = "office"
	FieldFiscalQuarter     Field = "fiscal_quarter"
	FieldSortSequence      Field = "sort_sequence"
	FieldProgramType       Field = "program_type"
	FieldExpenseCategory   Field = "expense_category"
	FieldRecordDate        Field = "record_date"
	FieldPayee             Field = "payee"
	FieldStartDate         Field = "start_date"
	FieldEndDate           Field = "end_date"
	FieldPurpose           Field = "purpose"
	FieldAmount            Field = "amount"
	FieldFiscalYear        Field = "fiscal_year"
	FieldOriginalRecipient Field = "original_recipient"
	FieldOldPayee          Field = "old_payee"
)

// Fields lists every canonical field in insert-column order. The loader
// builds its column lists from this enumeration only, never from input.
var Fields = []Field{
	FieldBioguideID,
	FieldOffice,
	FieldFiscalQuarter,
	FieldSortSequence,
	FieldProgramType,
	FieldExpenseCategory,
	FieldRecordDate,
	FieldPayee,
	FieldStartDate,
	FieldEndDate,
	FieldPurpose,
	FieldAmount,
	FieldFiscalYear,
	FieldOriginalRecipient,
	FieldOldPayee,
}

// Known reports whether f is part of the canonical enumeration.
func Known(f Field) bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Mapping associates raw CSV header labels with canonical fields.
// Lookups are exact: case- and whitespace-sensitive. The mapping is
// plain data so tests can run the pipeline against alternate layouts.
type Mapping map[string]Field

// DefaultMapping covers the header variants seen in House disbursement
// files. The empty label is the unlabeled payee column in older file
// formats.
var DefaultMapping = Mapping{
	"BIOGUIDE_ID":   FieldBioguideID,
	"OFFICE":        FieldOffice,
	"QUARTER":       FieldFiscalQuarter,
	"SORT SEQUENCE": FieldSortSequence,
	"PROGRAM":       FieldProgramType,
	"CATEGORY":      FieldExpenseCategory,
	"DATE":          FieldRecordDate,
	"PAYEE":         FieldPayee,
	"START DATE":    FieldStartDate,
	"END DATE":      FieldEndDate,
	"PURPOSE":       FieldPurpose,
	"AMOUNT":        FieldAmount,
	"YEAR":          FieldFiscalYear,
	"RECIP (orig.)": FieldOriginalRecipient,
	"":              FieldOldPayee,
}
