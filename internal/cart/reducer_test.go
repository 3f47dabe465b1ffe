package cart

import (
	"testing"

	"github.com/dxlr/storefront/internal/catalog"
	"github.com/stretchr/testify/require"
)

func lineFor(t *testing.T, id, size, color string, qty int) Item {
	t.Helper()
	p, ok := catalog.ByID(id)
	require.True(t, ok)
	return Item{
		Key:      ItemKey(p.ID, size, color),
		Product:  p,
		Size:     size,
		Color:    color,
		Quantity: qty,
	}
}

func TestReduceAddMergesSameKey(t *testing.T) {
	s := State{}
	s = Reduce(s, Add{Item: lineFor(t, "001", "M", "White", 1)})
	s = Reduce(s, Add{Item: lineFor(t, "001", "M", "White", 2)})
	s = Reduce(s, Add{Item: lineFor(t, "001", "L", "White", 1)})

	require.Len(t, s.Items, 2)
	require.Equal(t, 3, s.Items[0].Quantity)
	require.Equal(t, 1, s.Items[1].Quantity)
	require.True(t, s.IsOpen, "add opens the panel")
}

func TestReduceAddPreservesInsertionOrder(t *testing.T) {
	s := State{}
	s = Reduce(s, Add{Item: lineFor(t, "004", "32", "Indigo", 1)})
	s = Reduce(s, Add{Item: lineFor(t, "001", "M", "White", 1)})
	s = Reduce(s, Add{Item: lineFor(t, "004", "32", "Indigo", 1)})

	require.Equal(t, "004-32-Indigo", s.Items[0].Key)
	require.Equal(t, "001-M-White", s.Items[1].Key)
}

func TestReduceRemoveUnknownKeyIsNoop(t *testing.T) {
	s := Reduce(State{}, Add{Item: lineFor(t, "001", "M", "White", 1)})
	next := Reduce(s, Remove{Key: "nope"})
	require.Equal(t, s.Items, next.Items)
}

func TestReduceUpdateQuantityZeroEqualsRemove(t *testing.T) {
	base := Reduce(State{}, Add{Item: lineFor(t, "001", "M", "White", 2)})
	base = Reduce(base, Add{Item: lineFor(t, "002", "L", "Navy", 1)})

	removed := Reduce(base, Remove{Key: "001-M-White"})
	zeroed := Reduce(base, UpdateQuantity{Key: "001-M-White", Quantity: 0})
	negative := Reduce(base, UpdateQuantity{Key: "001-M-White", Quantity: -3})

	require.Equal(t, removed, zeroed)
	require.Equal(t, removed, negative)
}

func TestReduceClearKeepsPanelFlag(t *testing.T) {
	s := Reduce(State{}, Add{Item: lineFor(t, "001", "M", "White", 1)})
	require.True(t, s.IsOpen)

	s = Reduce(s, Clear{})
	require.Empty(t, s.Items)
	require.True(t, s.IsOpen)
}

func TestReducePanelActions(t *testing.T) {
	s := State{}
	s = Reduce(s, Toggle{})
	require.True(t, s.IsOpen)
	s = Reduce(s, Toggle{})
	require.False(t, s.IsOpen)
	s = Reduce(s, Open{})
	require.True(t, s.IsOpen)
	s = Reduce(s, Close{})
	require.False(t, s.IsOpen)
}

func TestReduceIsPure(t *testing.T) {
	s := Reduce(State{}, Add{Item: lineFor(t, "001", "M", "White", 1)})
	before := s.Items[0].Quantity

	_ = Reduce(s, Add{Item: lineFor(t, "001", "M", "White", 5)})
	require.Equal(t, before, s.Items[0].Quantity)
}

func TestDerivedTotals(t *testing.T) {
	s := State{}
	s = Reduce(s, Add{Item: lineFor(t, "001", "M", "White", 2)})  // 1850, not on sale
	s = Reduce(s, Add{Item: lineFor(t, "002", "L", "Navy", 1)})   // 4500, sale 3600

	require.Equal(t, 3, s.ItemCount())
	require.Equal(t, float64(1850*2+3600), s.Subtotal())
}
