package component

// PhysicsBody links a word entity to its body in the physics world. The
// material values are the ones rolled when the body was created.
type PhysicsBody struct {
	Handle      int
	Width       float64
	Height      float64
	Restitution float64
	Friction    float64
	AirFriction float64
	Density     float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
