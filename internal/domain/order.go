package domain

// OrderConstraints restrict the order in which missions may succeed.
type OrderConstraints struct {
	prerequisites map[Rule][]Rule
	positions     map[Rule]int
}

// EmptyOrder returns constraints that accept any order.
func EmptyOrder() OrderConstraints {
	return OrderConstraints{}
}

// OrderBuilder accumulates constraints.
type OrderBuilder struct {
	prerequisites map[Rule][]Rule
	positions     map[Rule]int
}

// NewOrderBuilder starts an empty set of constraints.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		prerequisites: make(map[Rule][]Rule),
		positions:     make(map[Rule]int),
	}
}

// Before requires first to have succeeded before then may succeed.
func (b *OrderBuilder) Before(first, then Rule) *OrderBuilder {
	for _, p := range b.prerequisites[then] {
		if p == first {
			return b
		}
	}
	b.prerequisites[then] = append(b.prerequisites[then], first)
	return b
}

// FixedPosition requires m to be the position-th mission to succeed (1-indexed).
func (b *OrderBuilder) FixedPosition(m Rule, position int) *OrderBuilder {
	b.positions[m] = position
	return b
}

// Build returns the accumulated constraints.
func (b *OrderBuilder) Build() OrderConstraints {
	return OrderConstraints{prerequisites: b.prerequisites, positions: b.positions}
}

// Prerequisites returns the missions that must succeed before m.
func (o OrderConstraints) Prerequisites(m Rule) []Rule {
	return append([]Rule(nil), o.prerequisites[m]...)
}

// Position returns the fixed success position of m, if it has one.
func (o OrderConstraints) Position(m Rule) (int, bool) {
	p, ok := o.positions[m]
	return p, ok
}

// Respected reports whether m may succeed at the given position, given the set of
// missions that count as succeeded.
func (o OrderConstraints) Respected(succeeded map[Rule]bool, m Rule, position int) bool {
	for _, p := range o.prerequisites[m] {
		if !succeeded[p] {
			return false
		}
	}
	if want, ok := o.positions[m]; ok && want != position {
		return false
	}
	return true
}
