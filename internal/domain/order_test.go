package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrder(t *testing.T) {
	id := func(s string) string { return s }

	tests := []struct {
		name  string
		items []string
		order []string
		want  []string
	}{
		{"follows order", []string{"a", "b", "c"}, []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"unknown ids skipped", []string{"a", "b"}, []string{"x", "b", "a"}, []string{"b", "a"}},
		{"unordered items appended", []string{"a", "b", "c"}, []string{"c"}, []string{"c", "a", "b"}},
		{"empty order keeps input", []string{"a", "b"}, nil, []string{"a", "b"}},
		{"repeated order id used once", []string{"a", "b"}, []string{"b", "b", "a"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapOrder(tt.items, tt.order, id))
		})
	}
}

func TestNormalize(t *testing.T) {
	raw := Board{
		ID:             "b",
		ColumnOrderIDs: []string{"B", "A"},
		Columns: []Column{
			{ID: "A", CardOrderIDs: []string{"c2", "c1"}, Cards: []Card{
				{ID: "c1", ColumnID: "A"},
				{ID: "c2"},
			}},
			{ID: "B", Cards: []Card{{ID: "c3", ColumnID: "B"}}},
		},
	}

	got := Normalize(raw)

	assert.Equal(t, []string{"B", "A"}, got.ColumnOrderIDs)
	assert.Equal(t, []string{"B", "A"}, ColumnIDs(got.Columns))
	assert.Equal(t, []string{"c2", "c1"}, got.Columns[1].CardOrderIDs)
	assert.Equal(t, "A", got.Columns[1].Cards[0].ColumnID, "missing columnId adopts the owner")
	assert.Equal(t, []string{"c3"}, got.Columns[0].CardOrderIDs, "missing order array rebuilt from cards")
	require.NoError(t, Validate(got))

	assert.Equal(t, "A", raw.Columns[0].ID, "input untouched")
	assert.Empty(t, raw.Columns[0].Cards[1].ColumnID, "input cards untouched")
}
