package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakatbook-dev/zakatbook/internal/model"
)

func TestWriteReadEntries(t *testing.T) {
	entries := []model.Entry{
		{
			ID:        "2024-001",
			Date:      date(2024, 3, 1),
			Type:      "Zakat",
			Service:   "Remitly",
			Recipient: "Islamic Relief USA",
			Notes:     "ramadan, first half",
			Amount:    dec("175.00"),
			Fees:      dec("3.99"),
		},
		{
			ID:        "2024-002",
			Date:      date(2024, 4, 10),
			Type:      "Sadaqah",
			Recipient: "Local Mosque",
			Amount:    dec("40.00"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entries[0].ID, got[0].ID)
	assert.Equal(t, entries[0].Notes, got[0].Notes)
	assert.True(t, got[0].Fees.Equal(dec("3.99")))
	assert.Equal(t, "", got[1].Service, "blank service survives round trip")
	assert.True(t, got[1].Fees.IsZero())
}

func TestReadEntriesEmpty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadEntriesHeaderOnly(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnmarshalEntryBadDate(t *testing.T) {
	rec := []string{"2024-001", "03/01/2024", "Zakat", "", "Local Mosque", "", "10.00", ""}
	_, err := UnmarshalEntry(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestUnmarshalEntryBadAmount(t *testing.T) {
	rec := []string{"2024-001", "2024-03-01", "Zakat", "", "Local Mosque", "", "ten", ""}
	_, err := UnmarshalEntry(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestMarshalEntryOmitsZeroFees(t *testing.T) {
	row := MarshalEntry(model.Entry{
		ID:        "2024-001",
		Date:      date(2024, 3, 1),
		Type:      "Zakat",
		Recipient: "Local Mosque",
		Amount:    dec("10"),
	})
	assert.Equal(t, "10.00", row[colAmount])
	assert.Equal(t, "", row[colFees])
}
