package component

// Pointer is the per-frame pointer state in container-local coordinates.
type Pointer struct {
	X       float64
	Y       float64
	Inside  bool
	Pressed bool
}

var PointerComponent = NewComponent[Pointer]()
