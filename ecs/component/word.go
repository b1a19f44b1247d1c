package component

// Word is the text carried by one overlay element.
type Word struct {
	Text        string
	Index       int
	Highlighted bool
	// Hue is assigned to highlighted words when their body is created.
	Hue    float64
	HasHue bool
}

var WordComponent = NewComponent[Word]()
