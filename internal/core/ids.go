package core

// IDAllocator hands out entity ids unique within one simulation instance.
// Ids start at 1 so that 0 can mean "no entity".
type IDAllocator struct {
	next int
}

// Next returns a fresh id.
func (a *IDAllocator) Next() int {
	a.next++
	return a.next
}

// Issued returns how many ids have been handed out.
func (a *IDAllocator) Issued() int {
	return a.next
}
