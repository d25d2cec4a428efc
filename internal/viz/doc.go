// Package viz provides terminal-based rendering of integrator output:
//
//   - [Canvas]: braille-based pixel canvas for high-fidelity line plots
//   - [Theme]: 5 built-in color schemes
//   - render.go: plots a state component or an error curve against the step grid
package viz
