package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxlr/storefront/internal/cart"
	"github.com/dxlr/storefront/internal/catalog"
)

func validInfo() Information {
	return Information{
		Email:     "customer@example.com",
		FirstName: "Nour",
		LastName:  "Hassan",
		Address:   "12 Tahrir Sq",
		City:      "Cairo",
		State:     "Cairo",
		ZipCode:   "11511",
		Country:   "Egypt",
		Phone:     "+20 100 123 4567",
	}
}

func cartWith(t *testing.T, id string, qty int) *cart.Store {
	t.Helper()
	ctx := context.Background()
	s := cart.NewStore(ctx, "test", nil, nil)
	p, ok := catalog.ByID(id)
	require.True(t, ok)
	s.AddItem(ctx, p, p.Sizes[0], p.Colors[0].Name, qty)
	return s
}

func TestFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	c := cartWith(t, "001", 2)
	f := NewFlow(c, 0)

	require.Equal(t, StepInformation, f.Step())
	require.NoError(t, f.SubmitInformation(validInfo()))
	require.Equal(t, StepShipping, f.Step())
	require.NoError(t, f.SelectShipping(ShippingExpress))
	require.Equal(t, StepReview, f.Step())

	code, err := f.Submit(ctx)
	require.NoError(t, err)
	require.Len(t, code, 8)
	require.Equal(t, code, f.Confirmation())
	require.Equal(t, StepComplete, f.Step())
	require.Empty(t, c.Items(), "completion clears the cart")
}

func TestFlowEmptyCartBlocks(t *testing.T) {
	ctx := context.Background()
	c := cart.NewStore(ctx, "test", nil, nil)
	f := NewFlow(c, 0)

	require.True(t, f.Blocked())
	require.ErrorIs(t, f.SubmitInformation(validInfo()), ErrEmptyCart)

	_, err := f.Submit(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestFlowCompleteNotBlockedByEmptyCart(t *testing.T) {
	ctx := context.Background()
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	require.NoError(t, f.SubmitInformation(validInfo()))
	require.NoError(t, f.SelectShipping(ShippingStandard))
	_, err := f.Submit(ctx)
	require.NoError(t, err)

	// cart is now empty but the completed flow is still reachable
	require.False(t, f.Blocked())
}

func TestFlowStrictlyLinear(t *testing.T) {
	ctx := context.Background()
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	require.ErrorIs(t, f.SelectShipping(ShippingStandard), ErrWrongStep)
	_, err := f.Submit(ctx)
	require.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, f.SubmitInformation(validInfo()))
	require.ErrorIs(t, f.SubmitInformation(validInfo()), ErrWrongStep)
}

func TestFlowBackKeepsData(t *testing.T) {
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	info := validInfo()
	require.NoError(t, f.SubmitInformation(info))
	require.NoError(t, f.SelectShipping(ShippingExpress))

	require.NoError(t, f.Back(StepInformation))
	require.Equal(t, StepInformation, f.Step())

	got, ok := f.Information()
	require.True(t, ok)
	require.Equal(t, info, got)
	require.Equal(t, ShippingExpress, f.Shipping())
}

func TestFlowBackOnlyToPriorSteps(t *testing.T) {
	ctx := context.Background()
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	require.ErrorIs(t, f.Back(StepReview), ErrWrongStep)
	require.ErrorIs(t, f.Back(StepInformation), ErrWrongStep)

	require.NoError(t, f.SubmitInformation(validInfo()))
	require.NoError(t, f.SelectShipping(ShippingStandard))
	_, err := f.Submit(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, f.Back(StepInformation), ErrWrongStep)
}

func TestFlowValidation(t *testing.T) {
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	bad := validInfo()
	bad.Email = "not-an-email"
	require.ErrorIs(t, f.SubmitInformation(bad), ErrValidation)

	bad = validInfo()
	bad.City = "  "
	require.ErrorIs(t, f.SubmitInformation(bad), ErrValidation)

	require.Equal(t, StepInformation, f.Step())
}

func TestFlowUnknownShippingMethod(t *testing.T) {
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)
	require.NoError(t, f.SubmitInformation(validInfo()))
	require.ErrorIs(t, f.SelectShipping("overnight"), ErrValidation)
}

func TestShippingCost(t *testing.T) {
	// 001 costs 1850: below the free-shipping threshold
	f := NewFlow(cartWith(t, "001", 1), 0)
	require.Equal(t, float64(standardCost), f.ShippingCost())
	require.Equal(t, float64(1850+standardCost), f.Total())

	// two of them cross the threshold
	f = NewFlow(cartWith(t, "001", 2), 0)
	require.Equal(t, float64(0), f.ShippingCost())

	// express is always flat
	c := cartWith(t, "001", 2)
	f = NewFlow(c, 0)
	require.NoError(t, f.SubmitInformation(validInfo()))
	require.NoError(t, f.SelectShipping(ShippingExpress))
	require.Equal(t, float64(expressCost), f.ShippingCost())
}

func TestSubmitClearsCartExactlyOnce(t *testing.T) {
	ctx := context.Background()
	c := cartWith(t, "001", 1)
	f := NewFlow(c, 0)

	require.NoError(t, f.SubmitInformation(validInfo()))
	require.NoError(t, f.SelectShipping(ShippingStandard))

	first, err := f.Submit(ctx)
	require.NoError(t, err)

	_, err = f.Submit(ctx)
	require.Error(t, err)
	require.Equal(t, first, f.Confirmation())
}

func TestConfirmationCodeShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := confirmationCode()
		require.Len(t, code, 8)
		for _, r := range code {
			require.Contains(t, codeAlphabet, string(r))
		}
	}
}
