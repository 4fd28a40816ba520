package expense

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldAmount, FieldRecordDate})

	rec, err := b.Build([]string{"ACME, Inc.", "1234.5", "January-05-2015"})
	require.NoError(t, err)
	require.Len(t, rec, 3)

	assert.Equal(t, "Acme Inc", rec[FieldPayee])
	assert.Equal(t, "1234.50", rec[FieldAmount])

	date, ok := rec[FieldRecordDate].(pgtype.Date)
	require.True(t, ok)
	assert.True(t, date.Valid)
}

func TestBuildOmitsEmptyValues(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldAmount, FieldPurpose})

	rec, err := b.Build([]string{"Acme", "", "office supplies"})
	require.NoError(t, err)

	require.Len(t, rec, 2)
	_, hasAmount := rec[FieldAmount]
	assert.False(t, hasAmount, "empty amount must be omitted, not stored empty")
}

func TestBuildOmitsValueThatNormalizesToEmpty(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldPurpose})

	// Nothing but deletable punctuation normalizes to the empty string.
	rec, err := b.Build([]string{"...", "rent"})
	require.NoError(t, err)

	require.Len(t, rec, 1)
	assert.Equal(t, "rent", rec[FieldPurpose])
}

func TestBuildRowWidthMismatch(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldAmount})

	_, err := b.Build([]string{"Acme", "10.00", "extra"})
	require.Error(t, err)

	var malformed *MalformedRowError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Want)
	assert.Equal(t, 3, malformed.Got)

	_, err = b.Build([]string{"Acme"})
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Got)
}

func TestBuildNormalizationErrorPropagates(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldRecordDate})

	_, err := b.Build([]string{"Acme", "not-a-date"})
	var dateErr *DateFormatError
	require.True(t, errors.As(err, &dateErr))
}

func TestBuildDittoPayee(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee, FieldAmount})

	first, err := b.Build([]string{"VERIZON WIRELESS", "10.00"})
	require.NoError(t, err)
	require.Equal(t, "Verizon Wireless", first[FieldPayee])

	second, err := b.Build([]string{"DO", "20.00"})
	require.NoError(t, err)
	assert.Equal(t, "Verizon Wireless", second[FieldPayee], "DO repeats the previous payee")

	third, err := b.Build([]string{"DO", "30.00"})
	require.NoError(t, err)
	assert.Equal(t, "Verizon Wireless", third[FieldPayee], "ditto chains keep the original payee")

	fourth, err := b.Build([]string{"STAPLES", "5.00"})
	require.NoError(t, err)
	require.Equal(t, "Staples", fourth[FieldPayee])

	fifth, err := b.Build([]string{"DO", "6.00"})
	require.NoError(t, err)
	assert.Equal(t, "Staples", fifth[FieldPayee])
}

func TestBuildDittoWithoutPreviousPayee(t *testing.T) {
	b := NewBuilder([]Field{FieldPayee})

	rec, err := b.Build([]string{"DO"})
	require.NoError(t, err)
	assert.Equal(t, "Do", rec[FieldPayee], "leading DO has nothing to repeat and is kept")
}

func TestBuilderStateDoesNotCrossBuilders(t *testing.T) {
	b1 := NewBuilder([]Field{FieldPayee})
	_, err := b1.Build([]string{"ACME"})
	require.NoError(t, err)

	// A fresh builder (new file) must not see the old payee.
	b2 := NewBuilder([]Field{FieldPayee})
	rec, err := b2.Build([]string{"DO"})
	require.NoError(t, err)
	assert.Equal(t, "Do", rec[FieldPayee])
}
