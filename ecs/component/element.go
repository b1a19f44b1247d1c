package component

// Element is the on-screen geometry of a word, relative to the container.
//
// Before activation the element sits in normal flow: FlowX/FlowY is the top
// left corner of its measured box. Once Positioned is set, X/Y is the center
// of the box and Rotation is applied around it.
type Element struct {
	FlowX  float64
	FlowY  float64
	Width  float64
	Height float64

	Positioned bool
	X          float64
	Y          float64
	Rotation   float64
}

// FlowCenter returns the center of the element's flow box.
func (e *Element) FlowCenter() (float64, float64) {
	return e.FlowX + e.Width/2, e.FlowY + e.Height/2
}

// Position switches the element to absolute positioning at its flow center.
func (e *Element) Position() {
	if e == nil || e.Positioned {
		return
	}
	e.X, e.Y = e.FlowCenter()
	e.Rotation = 0
	e.Positioned = true
}

var ElementComponent = NewComponent[Element]()
