// Package vector implements a generic growable array with explicit element
// lifetimes and a stated failure guarantee for every operation.
//
// # Overview
//
// Vector keeps raw slot allocation separate from element construction and
// destruction. Storage grows by doubling, and every copy into fresh storage
// can be undone: if an element copy fails part way, the elements built so far
// are destroyed in reverse order, the new block is dropped, and the original
// error is returned unchanged.
//
// # Basic Usage
//
//	v := vector.New[int]() // or: var v vector.Vector[int]
//	defer v.Release()
//
//	for i := range 3 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	*v.At(0) = 10
//	v.EraseRange(1, 2)
//
// # Element Lifetimes
//
// Plain types are copied by assignment. A type takes control of its own
// lifetime by implementing any of these on its pointer type:
//
//   - Constructor[T]: CopyFrom(src *T) error, may fail
//   - Destructor:     Destroy(), must not panic
//   - Swapper[T]:     SwapWith(other *T), must not panic for Insert to stay strong
//
// A panic raised by CopyFrom is treated like an error: partial work is
// unwound and the panic continues.
//
// # Guarantees
//
//   - Never fails: New, WithCapacity, Release, PopBack, Clear, Swap, accessors
//   - Strong (unchanged on error): From, Clone, Assign, PushBack, Reserve, ShrinkToFit
//   - Strong given a non-panicking swap: Insert
//   - Never fails given a non-panicking swap: Erase, EraseRange
//
// # Important Notes
//
//   - Positions are ints in [0, Len()]; Begin is 0 and End is Len()
//   - Pointers from At, Front, Back and Data are invalidated by reallocation
//   - Index and emptiness preconditions are not reported as errors
//   - Not goroutine-safe
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reserved: %d bytes\n", m.BytesReserved)
package vector
