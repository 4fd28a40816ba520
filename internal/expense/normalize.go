package expense

// normalize.go applies the per-field value rules that turn raw CSV cells
// into storable values. The files come from years of different export
// tooling, so the rules deal with sort-key prefixes, "FY 2015" style
// years, and punctuation variants of the same payee name.

import (
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DateLayout is the textual date pattern used by the disbursement files,
// e.g. "January-05-2015". Full month name, zero-padded day, 4-digit year.
const DateLayout = "January-02-2006"

// deleteChars are removed outright during text normalization. The two
// non-ASCII entries show up in files exported from old Windows tooling.
const deleteChars = ".,\t¬≠!?="

// deleteSubstrings are removed as whole substrings, longest variant
// first: ampersands and backslashes with any surrounding spaces.
var deleteSubstrings = []string{" & ", "& ", " &", " \\ ", " \\", "\\ "}

// NormalizeValue applies field's normalization rule to raw. Date fields
// return pgtype.Date; every other field returns a string. At most one
// rule fires per field; fields with no rule pass through unchanged. An
// empty raw value short-circuits every rule so blank cells can be
// omitted from the record instead of failing to parse.
func NormalizeValue(field Field, raw string) (any, error) {
	switch field {
	case FieldRecordDate, FieldStartDate, FieldEndDate:
		if raw == "" {
			return pgtype.Date{}, nil
		}
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, &DateFormatError{Field: field, Value: raw, Err: err}
		}
		return pgtype.Date{Time: t, Valid: true}, nil

	case FieldFiscalYear:
		return normalizeFiscalYear(raw), nil

	case FieldAmount:
		if raw == "" {
			return "", nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &AmountFormatError{Value: raw, Err: err}
		}
		return d.StringFixed(2), nil

	case FieldOffice:
		return normalizeOffice(raw), nil

	case FieldPayee, FieldOriginalRecipient, FieldOldPayee:
		return NormalizeText(raw), nil

	default:
		return raw, nil
	}
}

// normalizeFiscalYear reduces values like "FY 2015" to "2015" by taking
// the last whitespace-delimited token. A value that is still non-numeric
// after the split passes through unchanged.
func normalizeFiscalYear(raw string) string {
	if allDigits(raw) {
		return raw
	}
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return raw
	}
	return parts[len(parts)-1]
}

// normalizeOffice strips the 4-digit numeric sort-key prefix some files
// prepend to office names, then cleans the remainder. Values without the
// prefix pass through untouched, including their punctuation.
func normalizeOffice(raw string) string {
	if len(raw) > 4 && allDigits(raw[:4]) {
		return NormalizeText(raw[4:])
	}
	return raw
}

// NormalizeText cleans a free-text value so character-level variants of
// the same name collapse to one spelling: deletes the punctuation set
// and the padded ampersand/backslash substrings, squeezes whitespace
// runs to single spaces, trims, and title-cases each word.
func NormalizeText(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if strings.ContainsRune(deleteChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := b.String()
	for _, sub := range deleteSubstrings {
		cleaned = strings.ReplaceAll(cleaned, sub, "")
	}

	return titleCase(strings.Fields(cleaned))
}

// titleCase joins words with single spaces, capitalizing the first rune
// of each word and lowercasing the rest.
func titleCase(words []string) string {
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// allDigits reports whether s is non-empty and entirely ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsEmpty reports whether a normalized value carries no data: an empty
// string or an invalid (null) date. Empty values are never persisted.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case string:
		return t == ""
	case pgtype.Date:
		return !t.Valid
	default:
		return v == nil
	}
}
