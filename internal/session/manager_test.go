package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dxlr/storefront/internal/catalog"
	"github.com/dxlr/storefront/internal/checkout"
)

func TestManagerReturnsSameSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil, nil)

	a := m.Get(ctx, "sid-1")
	b := m.Get(ctx, "sid-1")
	require.Same(t, a, b)

	other := m.Get(ctx, "sid-2")
	require.NotSame(t, a, other)
}

func TestSessionCartsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil, nil)

	p, _ := catalog.ByID("001")
	m.Get(ctx, "a").Cart.AddItem(ctx, p, "M", "White", 1)

	require.Empty(t, m.Get(ctx, "b").Cart.Items())
	require.Len(t, m.Get(ctx, "a").Cart.Items(), 1)
}

func TestCheckoutFlowLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(nil, nil)
	s := m.Get(ctx, "sid")

	f := s.Checkout(time.Millisecond)
	require.Same(t, f, s.Checkout(time.Millisecond))
	require.Equal(t, checkout.StepInformation, f.Step())

	s.ResetCheckout()
	require.NotSame(t, f, s.Checkout(time.Millisecond))
}
