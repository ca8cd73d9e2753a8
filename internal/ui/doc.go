// Package ui contains the Bubble Tea program that powers the cascading
// resource browser. The package is structured so the Model type focuses on
// message orchestration, while dedicated helpers own navigation, input,
// fetching, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, mouse input,
//     fetch completions, refresh ticks, command completions).
//   - Keystrokes are first offered to any blocking overlay, then to the
//     state-independent handlers (navigation, refresh, key-bound commands),
//     and finally to the active panel's filter state machine.
//
// State ownership:
//   - Panel state lives in internal/ui/state.Panel, which tracks rows,
//     filtering, the circular window, and the selection.
//   - Fetch lifecycle state (generation stamps, cancellation, the guard
//     serialising refreshes against external commands) lives in
//     internal/backend.
//
// Fetch interactions:
//   - Every fetch runs on its own goroutine behind a backend.Handle; the
//     resulting panelRowsMsg only commits if its handle is still current.
//   - Cascade refreshes are serialised left to right so each panel's fetch
//     parameters reflect its parent's committed selection.
package ui
