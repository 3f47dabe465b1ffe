package cart

// The closed set of cart mutations. Every state change goes through
// Reduce, which is pure: it never mutates its input and never fails.

type Action interface{ isAction() }

type Add struct{ Item Item }

type Remove struct{ Key string }

type UpdateQuantity struct {
	Key      string
	Quantity int
}

type Clear struct{}

type Toggle struct{}

type Open struct{}

type Close struct{}

type Load struct{ Items []Item }

func (Add) isAction()            {}
func (Remove) isAction()         {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
func (Toggle) isAction()         {}
func (Open) isAction()           {}
func (Close) isAction()          {}
func (Load) isAction()           {}

// Reduce applies one action to a state and returns the next state.
// Unknown keys on Remove and UpdateQuantity are no-ops, and a
// non-positive quantity on UpdateQuantity behaves like Remove.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Add:
		items := copyItems(s.Items)
		if i := s.indexOf(a.Item.Key); i >= 0 {
			items[i].Quantity += a.Item.Quantity
		} else {
			items = append(items, a.Item)
		}
		return State{Items: items, IsOpen: true}

	case Remove:
		return State{Items: without(s.Items, a.Key), IsOpen: s.IsOpen}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(s, Remove{Key: a.Key})
		}
		items := copyItems(s.Items)
		if i := s.indexOf(a.Key); i >= 0 {
			items[i].Quantity = a.Quantity
		}
		return State{Items: items, IsOpen: s.IsOpen}

	case Clear:
		return State{Items: nil, IsOpen: s.IsOpen}

	case Toggle:
		return State{Items: s.Items, IsOpen: !s.IsOpen}

	case Open:
		return State{Items: s.Items, IsOpen: true}

	case Close:
		return State{Items: s.Items, IsOpen: false}

	case Load:
		return State{Items: copyItems(a.Items), IsOpen: s.IsOpen}
	}
	return s
}

func copyItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func without(items []Item, key string) []Item {
	var out []Item
	for _, it := range items {
		if it.Key != key {
			out = append(out, it)
		}
	}
	return out
}
