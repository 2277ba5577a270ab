// Package viz renders comb sort traces in the terminal.
//
// The package implements an interactive player using the Bubble Tea framework:
//
//   - [Model]: the player UI driving a [player.Player] on a timer
//   - [RenderBars]: one step as coloured bars with the gap arc underneath
//   - [RenderListing]: the reference listing with the step's line marked
//   - [Canvas]: Braille canvas used when the array is wider than the terminal
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	Space   - Play/Pause
//	→/l ←/h - Step forward/backward
//	Home/End - Jump to first/last step
//	R       - New random input
//	+/-     - Faster/slower
//	T       - Cycle color themes
//	?       - Full help
//	Q       - Quit
//
// # Highlighting
//
// Compared pairs, swapped pairs and the final sorted array each get their
// own colour; every other bar is drawn in the neutral colour. See [Highlight].
package viz
