// Package viz is the terminal front end of the portfolio.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: section navigation, dark mode, project filter and scrolling
//   - [Canvas]: Braille-based pixel canvas the particle field renders onto
//   - [Theme]: dark and light colour schemes
//
// # Key Bindings
//
//	1-5, Tab  - Switch section (home, about, projects, skills, contact)
//	D         - Toggle dark mode
//	F         - Cycle project filter
//	J/K, G    - Scroll, back to top
//	?         - Show help overlay
//	Q         - Quit
//
// The particle field only runs while the home section is showing. Mouse
// motion is tracked everywhere so the field reacts as soon as it resumes.
package viz
