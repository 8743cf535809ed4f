// Package content exposes the declarative schema registry that drives the
// admin form editor. Every section of the site is described as an ordered
// list of Field descriptors; composite kinds carry their sub-schemas inline.
// The registry is defined in internal/content and is read-only at runtime:
// adding a section means adding a descriptor, not touching the editor.
//
// Bilingual text follows a fixed convention: an object field whose children
// are exactly the "en"/"id" pair. The form editor and the locale resolver
// both key off that shape, so a record that happens to use those two field
// names for unrelated semantics will be treated as localized content. That is
// an accepted constraint of the convention, not something the code tries to
// special-case away.
package content
