package core

// Color is the draw role of a screen cell. Games pick roles; the platform
// maps each role to a terminal color.
type Color uint8

const (
	ColorDefault  Color = iota // Terminal default foreground
	ColorShip                  // Player ship outline
	ColorAsteroid              // Asteroid outlines
	ColorBullet                // Bullets in flight
	ColorBorder                // Field border
	ColorHUD                   // Score line and overlay titles
	ColorMuted                 // Secondary text
	ColorHitbox                // Debug hitboxes
	ColorDebug                 // Debug counters
	ColorStatus                // Platform status messages
	colorCount
)

var colorNames = [colorCount]string{
	"default", "ship", "asteroid", "bullet", "border",
	"hud", "muted", "hitbox", "debug", "status",
}

// String returns the role name.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// NumColors is the number of defined roles, for palette tables.
const NumColors = int(colorCount)
