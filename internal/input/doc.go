// Package input defines the editor's input vocabulary.
//
// The terminal backend translates raw terminal events into Events. There
// are two kinds:
//
//   - KindKey: a logical key (arrow, Enter, Backspace, Quit, Save)
//     together with the set of active modifiers
//   - KindChar: a single typed character to be inserted
//
// The dispatcher turns Events into editor commands; nothing in this
// package mutates editor state.
//
// # Key Specifications
//
// Parse accepts the textual form produced by Event.String, which keeps
// tests and log output readable:
//
//	ev, _ := input.Parse("Shift+Alt+Left")
//	ev, _ = input.Parse("Enter")
//	ev, _ = input.Parse("x")
package input
