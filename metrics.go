package vector

import "unsafe"

// SlotSize returns the size in bytes of one storage slot.
func (v *Vector[T]) SlotSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.length * v.SlotSize()
}

// BytesReserved returns the total size in bytes of the storage block.
func (v *Vector[T]) BytesReserved() int {
	return len(v.slots) * v.SlotSize()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T]) Utilization() float64 {
	if len(v.slots) == 0 {
		return 0
	}
	return float64(v.length) / float64(len(v.slots))
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.length,
		Cap:           len(v.slots),
		SlotSize:      v.SlotSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated slots
	SlotSize      int     // Bytes per slot
	BytesInUse    int     // Len * SlotSize
	BytesReserved int     // Cap * SlotSize
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
