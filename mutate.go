package vector

// PushBack appends a copy of value. When the vector is full the storage doubles
// (or becomes one slot when empty). If copying fails the error is returned and
// v is left exactly as it was.
func (v *Vector[T]) PushBack(value T) error {
	if v.length < len(v.slots) {
		if err := construct(&v.slots[v.length], &value); err != nil {
			return err
		}
		v.length++
		return nil
	}

	newCap := 1
	if c := len(v.slots); c > 0 {
		newCap = c * 2
	}
	block, err := duplicate(v.live(), newCap)
	if err != nil {
		return err
	}
	built := false
	defer func() {
		if !built {
			destroyRange(block, v.length)
		}
	}()
	if err := construct(&block[v.length], &value); err != nil {
		return err
	}
	built = true

	v.adopt(block)
	v.length++
	return nil
}

// PopBack destroys the last element. Panics if the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.length--
	destroy(&v.slots[v.length])
}

// Reserve grows the storage to at least n slots. It never shrinks.
// On error the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.slots) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates the storage to exactly Len() slots.
// On error the vector is unchanged.
func (v *Vector[T]) ShrinkToFit() error {
	if v.length == len(v.slots) {
		return nil
	}
	return v.reallocate(v.length)
}

func (v *Vector[T]) reallocate(capacity int) error {
	block, err := duplicate(v.live(), capacity)
	if err != nil {
		return err
	}
	v.adopt(block)
	return nil
}

// Clear destroys all elements in reverse order and keeps the storage.
func (v *Vector[T]) Clear() {
	destroyRange(v.slots, v.length)
	v.length = 0
}

// Insert places a copy of value at position pos, shifting later elements
// right, and returns pos. The copy is appended first, so a failing copy leaves
// v unchanged; the shift is done with element swaps and is only safe if those
// cannot panic. pos must be in [0, Len()].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	v.panicIfOutOfRange(pos, pos)
	if err := v.PushBack(value); err != nil {
		return 0, err
	}
	for i := v.length - 1; i > pos; i-- {
		swap(&v.slots[i-1], &v.slots[i])
	}
	return pos, nil
}

// Erase removes the element at pos and returns the position of the element
// that now follows the removed one.
func (v *Vector[T]) Erase(pos int) int {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first, which is
// End() when the range reached the end. The surviving tail is moved left with
// element swaps and the vacated back slots are then popped.
func (v *Vector[T]) EraseRange(first, last int) int {
	v.panicIfOutOfRange(first, last)
	k := last - first
	if k == 0 {
		return first
	}
	for i := first; i < v.length-k; i++ {
		swap(&v.slots[i], &v.slots[i+k])
	}
	for range k {
		v.PopBack()
	}
	return first
}
