package expense

// NormalizeHeaders maps a file's raw header row to canonical fields,
// preserving length and order. Every label must have a mapping entry;
// a miss is fatal because the column layout varies between files and a
// partial translation would misalign every data row after it.
func NormalizeHeaders(header []string, m Mapping) ([]Field, error) {
	fields := make([]Field, 0, len(header))
	for _, label := range header {
		field, ok := m[label]
		if !ok {
			return nil, &UnknownHeaderError{Label: label}
		}
		fields = append(fields, field)
	}
	return fields, nil
}
