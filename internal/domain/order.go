package domain

// MapOrder arranges items so they follow order. IDs in order with no matching
// item are skipped; items whose ID is missing from order keep their relative
// position after the ordered ones.
func MapOrder[T any](items []T, order []string, id func(T) string) []T {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		byID[id(item)] = i
	}

	result := make([]T, 0, len(items))
	used := make([]bool, len(items))
	for _, key := range order {
		i, ok := byID[key]
		if !ok || used[i] {
			continue
		}
		used[i] = true
		result = append(result, items[i])
	}
	for i, item := range items {
		if !used[i] {
			result = append(result, item)
		}
	}
	return result
}

// Normalize returns the board with columns arranged by ColumnOrderIDs and
// every column's cards arranged by its CardOrderIDs, then rebuilds both order
// arrays from the result. Cards with no ColumnID adopt their column's. Boards arriving from storage are not guaranteed to
// keep entity slices and order arrays in step; the engine assumes they do.
func Normalize(b Board) Board {
	columns := MapOrder(b.Columns, b.ColumnOrderIDs, func(c Column) string { return c.ID })
	for i, col := range columns {
		cards := MapOrder(col.Cards, col.CardOrderIDs, func(c Card) string { return c.ID })
		for j := range cards {
			if cards[j].ColumnID == "" {
				cards[j].ColumnID = col.ID
			}
		}
		columns[i] = col.WithCards(cards)
	}
	return b.WithColumns(columns)
}
