package intents

// Intent represents a high-level action a view can perform.
// It decouples inputs (keyboard/mouse) from the actual capability.
type Intent interface {
	isIntent()
}
