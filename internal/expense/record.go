package expense

// Record maps canonical fields to their normalized values. It holds only
// fields whose value is non-empty, so the loader's dynamic column list
// stays meaningful.
type Record map[Field]any

// DittoPayee is the literal payee token meaning "same payee as the
// previous row".
const DittoPayee = "DO"

// Builder assembles Records from raw data rows. It carries the previous
// row's payee across rows of one file so a ditto payee can be resolved.
// Create a fresh Builder per file; the carry-over never crosses files.
type Builder struct {
	fields    []Field
	prevPayee string
}

// NewBuilder returns a Builder for rows positionally aligned with the
// given canonical field sequence (the output of NormalizeHeaders).
func NewBuilder(fields []Field) *Builder {
	return &Builder{fields: fields}
}

// Build normalizes one raw row into a Record. The row must be exactly as
// wide as the header row; anything else means the file is corrupt and
// positional decoding cannot be trusted. Empty normalized values are
// omitted from the record entirely.
func (b *Builder) Build(row []string) (Record, error) {
	if len(row) != len(b.fields) {
		return nil, &MalformedRowError{Want: len(b.fields), Got: len(row)}
	}

	rec := make(Record, len(row))
	for i, raw := range row {
		field := b.fields[i]

		// Ditto handling: a literal "DO" payee repeats the previous
		// row's payee. With no previous payee the token is kept and
		// normalized like any other value.
		if field == FieldPayee && raw == DittoPayee && b.prevPayee != "" {
			rec[field] = b.prevPayee
			continue
		}

		value, err := NormalizeValue(field, raw)
		if err != nil {
			return nil, err
		}

		if field == FieldPayee && raw != DittoPayee {
			if s, ok := value.(string); ok && s != "" {
				b.prevPayee = s
			}
		}

		if IsEmpty(value) {
			continue
		}
		rec[field] = value
	}

	return rec, nil
}
