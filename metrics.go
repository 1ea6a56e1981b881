package vector

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	return int(sizeOf[T]())
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.ElemSize()
}

// CapacityBytes returns the size of the vector's block in bytes.
func (v *Vector[T]) CapacityBytes() int {
	return v.data.Bytes()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Slots in the block
	ElemSize      int     // Bytes per slot
	SizeInUse     int     // Bytes held by live elements
	CapacityBytes int     // Block size in bytes
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
