// Package pom provides a live object model over a parsed POM document.
//
// A wrapper holds one element and reads or writes the tree on every call; there is no
// separate value model to write back. Collections (Dependencies, Profiles, Modules) bind a
// list onto the run of same-named children of a container element and keep their cached
// order equal to the document order after every call.
//
// Edits preserve formatting: new elements are placed at their canonical POM position with
// the indentation detected around them, removed elements take their own indentation run
// with them, and everything else is left byte for byte.
//
// Operations a wrapper or collection deliberately does not implement fail with an error
// for which errors.Is(err, errors.ErrUnsupported) holds, and leave the tree unchanged.
package pom
