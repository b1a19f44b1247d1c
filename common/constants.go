package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed ebiten tick rate the simulation is stepped at.
	TPS       = 60
	FrameStep = 1.0 / TPS

	// GravityScale converts the configured gravity unit into px/s².
	GravityScale = 1000.0

	DefaultGravity          = 0.56
	DefaultFontSize         = "2rem"
	DefaultPointerStiffness = 0.9
	DefaultPointerDamping   = 0.1
	DefaultJitterChance     = 0.05
	DefaultWiggle           = 1.5
	DefaultBackground       = "transparent"
	DefaultTextColor        = "#ffffff"
	DefaultHighlightColor   = "#5227FF"

	// RootFontSize is the px size of 1rem.
	RootFontSize = 16.0
)
