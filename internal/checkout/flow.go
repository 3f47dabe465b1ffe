package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dxlr/storefront/internal/cart"
	"github.com/dxlr/storefront/internal/util"
)

type Step string

const (
	StepInformation Step = "information"
	StepShipping    Step = "shipping"
	StepReview      Step = "review"
	StepComplete    Step = "complete"
)

var stepOrder = map[Step]int{
	StepInformation: 0,
	StepShipping:    1,
	StepReview:      2,
	StepComplete:    3,
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// Shipping cost rule, whole EGP.
const (
	expressCost       = 150
	standardCost      = 100
	freeShippingAbove = 2000
)

var (
	ErrValidation = errors.New("validation")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrWrongStep  = errors.New("wrong step")
)

// Information is the customer form collected at the first step.
type Information struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

func (i Information) validate() error {
	if !util.ValidEmail(i.Email) {
		return fmt.Errorf("invalid email: %w", ErrValidation)
	}
	required := map[string]string{
		"first_name": i.FirstName,
		"last_name":  i.LastName,
		"address":    i.Address,
		"city":       i.City,
		"country":    i.Country,
		"phone":      i.Phone,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required: %w", field, ErrValidation)
		}
	}
	return nil
}

// Flow walks one session through information, shipping, review and
// complete, strictly in that order. Backward navigation keeps the data
// already entered. An empty cart blocks every step except complete.
type Flow struct {
	mu           sync.Mutex
	step         Step
	info         Information
	infoSet      bool
	shipping     ShippingMethod
	cart         *cart.Store
	delay        time.Duration
	confirmation string
}

func NewFlow(c *cart.Store, delay time.Duration) *Flow {
	return &Flow{
		step:     StepInformation,
		shipping: ShippingStandard,
		cart:     c,
		delay:    delay,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Blocked reports whether the flow must redirect to the empty-cart
// notice instead of showing the current step.
func (f *Flow) Blocked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.blocked()
}

func (f *Flow) blocked() bool {
	return f.step != StepComplete && f.cart.ItemCount() == 0
}

func (f *Flow) Information() (Information, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.info, f.infoSet
}

func (f *Flow) Shipping() ShippingMethod {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shipping
}

// SubmitInformation validates the form and advances to shipping.
func (f *Flow) SubmitInformation(info Information) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blocked() {
		return ErrEmptyCart
	}
	if f.step != StepInformation {
		return fmt.Errorf("information already submitted at %s: %w", f.step, ErrWrongStep)
	}
	if err := info.validate(); err != nil {
		return err
	}
	f.info = info
	f.infoSet = true
	f.step = StepShipping
	return nil
}

// SelectShipping records the method and advances to review.
func (f *Flow) SelectShipping(m ShippingMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.blocked() {
		return ErrEmptyCart
	}
	if f.step != StepShipping {
		return fmt.Errorf("shipping step not reached: %w", ErrWrongStep)
	}
	if m != ShippingStandard && m != ShippingExpress {
		return fmt.Errorf("unknown shipping method %q: %w", m, ErrValidation)
	}
	f.shipping = m
	f.step = StepReview
	return nil
}

// Back navigates to any prior step without dropping entered data.
func (f *Flow) Back(to Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := stepOrder[to]
	if !ok {
		return fmt.Errorf("unknown step %q: %w", to, ErrValidation)
	}
	if f.step == StepComplete || target >= stepOrder[f.step] {
		return fmt.Errorf("cannot go back from %s to %s: %w", f.step, to, ErrWrongStep)
	}
	f.step = to
	return nil
}

// ShippingCost applies the original rule: express is flat, standard is
// free over the threshold.
func (f *Flow) ShippingCost() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shippingCost()
}

func (f *Flow) shippingCost() float64 {
	if f.shipping == ShippingExpress {
		return expressCost
	}
	if f.cart.Subtotal() >= freeShippingAbove {
		return 0
	}
	return standardCost
}

func (f *Flow) Total() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cart.Subtotal() + f.shippingCost()
}

// Confirmation is the display-only code produced at completion.
func (f *Flow) Confirmation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation
}

// Submit runs the simulated payment: a fixed delay that always
// succeeds, then the flow completes and the cart is cleared exactly
// once. There is no cancellation path; once started it runs to the end.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.blocked() {
		f.mu.Unlock()
		return "", ErrEmptyCart
	}
	if f.step != StepReview {
		f.mu.Unlock()
		return "", fmt.Errorf("submit only allowed at review: %w", ErrWrongStep)
	}
	f.mu.Unlock()

	time.Sleep(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepReview {
		// a concurrent submit completed while we slept
		return "", fmt.Errorf("submit only allowed at review: %w", ErrWrongStep)
	}
	f.step = StepComplete
	f.confirmation = confirmationCode()
	f.cart.Clear(ctx)
	return f.confirmation, nil
}

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// confirmationCode is display-only; uniqueness is not guaranteed.
func confirmationCode() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
