// Package engine provides the text-editing core of the editor: the
// document with its character buffer, cursor and selection, the
// reversible edit history, search and bracket matching, and the
// packed rendering view handed to a renderer.
//
// # Architecture
//
// The engine is built from several sub-packages:
//
//   - textbuf: code-point buffer with a derived line-start index and
//     a transient position iterator
//   - action: the closed set of reversible edit operations
//   - history: undo/redo stacks with typing-run coalescing
//   - cell: the packed per-character rendering cell
//
// # Concurrency
//
// A Document is single-threaded and non-reentrant: every operation
// runs to completion before the next is invoked, and the engine
// performs no internal locking. An embedding environment with real
// concurrency must serialize all access itself. Iterators are
// invalidated by any mutation and must not be retained across
// Execute, Undo or Redo.
//
// # Basic usage
//
//	doc := engine.New(
//	    engine.WithText("hello world"),
//	    engine.WithProfile(language.Go()),
//	)
//
//	a := action.NewReplace(5, 0, ",", true)
//	doc.Execute(a, true)
//	doc.Undo()
//
//	cells := doc.View(0, 24, 0, 80)
//
// # Errors
//
// Out-of-range navigation input is clamped, never an error. Degenerate
// operations (empty search key, trivial actions, no bracket at the
// cursor) report sentinel results. Buffer/line-index disagreement and
// broken apply/undo alternation are programming faults and panic.
package engine
