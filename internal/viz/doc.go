// Package viz renders trajectories in the terminal.
//
// Rendering uses Unicode Braille patterns, giving each character cell a
// 2x4 grid of dots:
//
//   - [Canvas]: Braille dot grid with line drawing
//   - [Viewport]: world-to-dot transform with pan and zoom
//   - [Viewer]: bubbletea model for inspecting individual samples
//
// The viewer only reads the trajectories it displays. Changing a setting
// re-integrates synchronously, so at most one run is ever in flight.
package viz
