package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Neon Constellation - R: restart, D: debug, Esc/Q: quit"

	// Field
	ParticleCount = 100
	MaxSpeed      = 0.6
	MinSize       = 1.5
	MaxSize       = 4.0

	// Pointer repulsion
	RepelRadius = 120
	RepelStep   = 0.7

	// Connections
	LinkDistance  = 150
	LinkAlphaBase = 0.12
	LinkAlphaSpan = 0.25
	LinkBlur      = 8
	LinkWidth     = 1.5

	// Particle glow
	GlowAlpha    = 0.7
	GlowMidStop  = 0.7
	GlowMidAlpha = 0xcc / 255.0
	GlowInner    = 0.1

	Background = "#0b0c10"

	// Debug overlay
	StatsWindow = 120
)

// Palette holds the three particle colors.
var Palette = [3]string{"#00fff7", "#a259f7", "#ffffff"}
