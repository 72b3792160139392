// Package field implements the ambient particle field drawn behind the
// portfolio landing view.
//
// The package is split into three layers:
//
//   - [Field]: the particle set and its per-tick update rule
//   - [Surface]: the drawing target a field renders onto
//   - [Simulator]: the Stopped/Running lifecycle that drives update and
//     render once per frame through an injected [Scheduler]
//
// # Example
//
//	sched := field.NewManualScheduler()
//	sim := field.NewSimulator(field.DefaultParams(), nil, surface, sched)
//	_ = sim.Start(field.Viewport{Width: 1280, Height: 720})
//	sim.MovePointer(640, 360)
//	sched.Step()
//
// # Thread Safety
//
// Nothing here is safe for concurrent use. Pointer updates and ticks are
// expected to arrive on the same goroutine, which is what both the Bubble
// Tea and raylib front ends do.
package field
