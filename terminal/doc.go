// Package terminal is the boundary to the terminal driver.
//
// The engine above it consumes a Screen
// (acquire/release, blocking input, geometry) and Surfaces (movable
// rectangular drawing regions composited into one back buffer). Surfaces
// follow the window model: drawing mutates the surface's own cells,
// Refresh blits them into the screen buffer, and Flush commits the whole
// frame to the terminal in a single Show.
//
// Input arrives as flat Events: key presses, resize notifications, and
// pointer reports. Pointer reports carry a button transition (press,
// release, move) derived by the screen from consecutive button masks, so
// callers never see raw masks.
package terminal
