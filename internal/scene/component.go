package scene

// Component is a behavior attached to an Entity. Hooks run in attachment
// order.
type Component interface {
	OnBeginPlay(owner *Entity)
	OnTick(owner *Entity, dt float64)
	OnDestroyed(owner *Entity)
}

// NopComponent implements the hooks that a component does not care about.
type NopComponent struct{}

func (NopComponent) OnBeginPlay(*Entity) {}

func (NopComponent) OnTick(*Entity, float64) {}

func (NopComponent) OnDestroyed(*Entity) {}

// SpinComponent rotates its owner at a fixed rate in degrees per second.
type SpinComponent struct {
	NopComponent

	PitchRate float32
	YawRate   float32
	RollRate  float32
}

func (c *SpinComponent) OnTick(owner *Entity, dt float64) {
	owner.Transform().RotateBy(
		c.PitchRate*float32(dt),
		c.YawRate*float32(dt),
		c.RollRate*float32(dt),
	)
}
