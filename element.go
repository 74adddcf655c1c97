package vector

// Constructor is implemented by *T when copying an element can fail or needs
// more than plain assignment. CopyFrom is always called on a zero slot and must
// leave the slot unconstructed when it returns an error.
type Constructor[T any] interface {
	CopyFrom(src *T) error
}

// Destructor is implemented by *T when an element owns something that has to be
// given back before its slot is reused. Destroy must not panic.
type Destructor interface {
	Destroy()
}

// Swapper is implemented by *T to exchange two live elements. Insert and Erase
// shift elements only through swaps, so the strong guarantee of Insert holds
// only when SwapWith cannot panic.
type Swapper[T any] interface {
	SwapWith(other *T)
}

// construct copy-constructs *src into the raw slot dst.
// On error or panic dst is reset to the zero value before control leaves.
func construct[T any](dst, src *T) error {
	c, ok := any(dst).(Constructor[T])
	if !ok {
		*dst = *src
		return nil
	}
	done := false
	defer func() {
		if !done {
			var zero T
			*dst = zero
		}
	}()
	if err := c.CopyFrom(src); err != nil {
		return err
	}
	done = true
	return nil
}

// destroy ends the lifetime of *p and zeroes the slot so the GC can reclaim
// anything it referenced.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destructor); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

func swap[T any](a, b *T) {
	if s, ok := any(a).(Swapper[T]); ok {
		s.SwapWith(b)
		return
	}
	*a, *b = *b, *a
}

// destroyRange destroys block[:n] in reverse index order.
func destroyRange[T any](block []T, n int) {
	for i := n; i > 0; i-- {
		destroy(&block[i-1])
	}
}

// duplicate allocates a block of capacity slots and copy-constructs src into
// its prefix. If any copy fails, the elements built so far are destroyed in
// reverse order and the error is returned unchanged; a panic is unwound the
// same way and then continues. capacity must be at least len(src).
func duplicate[T any](src []T, capacity int) ([]T, error) {
	if capacity == 0 {
		return nil, nil
	}
	block := make([]T, capacity)
	built := 0
	defer func() {
		if built < len(src) {
			destroyRange(block, built)
		}
	}()
	for ; built < len(src); built++ {
		if err := construct(&block[built], &src[built]); err != nil {
			return nil, err
		}
	}
	return block, nil
}
