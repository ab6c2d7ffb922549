package pom

import (
	"iter"
	"slices"

	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/indent"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// EditFunc observes successful collection edits. collection is the container tag, operation
// is "add" or "remove".
type EditFunc func(collection, operation string)

// addEntry is the outcome of classifying an entry passed to Add. Exactly one field is set:
// clone for an element that is already backed by a tree (of any document), fill for a plain
// value whose carried fields have been snapshotted and checked.
type addEntry struct {
	clone *etree.Element
	fill  func(*etree.Element)
}

// runSpec describes one kind of live collection.
type runSpec[T, A any] struct {
	typeName     string
	containerTag string
	itemTag      string
	// collapse removes the container once the last item is removed.
	collapse bool
	wrap     func(*etree.Element) T
	// keyOf computes the identity key of an entry, itemKey that of a tracked item.
	keyOf   func(A) (string, error)
	itemKey func(*etree.Element) string
	// classify decides the add path. It must not touch the tree.
	classify func(A) (addEntry, error)
}

// elementRun binds a list onto the run of itemTag children of a container element. The
// container is looked up once; while it is missing the run is virtual and the first Add
// materializes it under owner.
//
// items mirrors the container's item children in document order after every call.
type elementRun[T, A any] struct {
	spec      *runSpec[T, A]
	owner     resolver
	container *etree.Element
	items     []*etree.Element
	onEdit    EditFunc
}

func newElementRun[T, A any](spec *runSpec[T, A], owner resolver, onEdit EditFunc) *elementRun[T, A] {
	r := &elementRun[T, A]{spec: spec, owner: owner, onEdit: onEdit}
	if o := owner(false); o != nil {
		r.container = xmltree.ChildElement(o, spec.containerTag)
	}
	if r.container != nil {
		for _, el := range r.container.ChildElements() {
			if el.Tag == spec.itemTag {
				r.items = append(r.items, el)
			}
		}
	}
	return r
}

// Len returns the number of items.
func (r *elementRun[T, A]) Len() int { return len(r.items) }

// IsVirtual reports whether the container element is absent.
func (r *elementRun[T, A]) IsVirtual() bool { return r.container == nil }

// Get returns the item at i. It panics if i is out of range.
func (r *elementRun[T, A]) Get(i int) T { return r.spec.wrap(r.items[i]) }

// All iterates the items in document order.
func (r *elementRun[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, el := range r.items {
			if !yield(i, r.spec.wrap(el)) {
				return
			}
		}
	}
}

// Values returns a copy of the items.
func (r *elementRun[T, A]) Values() []T {
	out := make([]T, 0, len(r.items))
	for _, v := range r.All() {
		out = append(out, v)
	}
	return out
}

// IndexOf returns the position of the first item whose identity key equals x's, or -1.
func (r *elementRun[T, A]) IndexOf(x A) (int, error) {
	k, err := r.spec.keyOf(x)
	if err != nil {
		return -1, err
	}
	return slices.IndexFunc(r.items, func(el *etree.Element) bool { return r.spec.itemKey(el) == k }), nil
}

// Contains reports whether an item with x's identity key exists.
func (r *elementRun[T, A]) Contains(x A) (bool, error) {
	i, err := r.IndexOf(x)
	return i >= 0, err
}

// Add appends x at the end of the run. The container is created first when the run is
// virtual. Nothing is modified when x cannot be read or carries data this collection
// cannot store.
func (r *elementRun[T, A]) Add(x A) error {
	entry, err := r.spec.classify(x)
	if err != nil {
		return err
	}
	return r.add(entry)
}

// AddAll appends xs in order. Every entry is classified before the first one is written, so
// a rejected entry leaves the tree untouched.
func (r *elementRun[T, A]) AddAll(xs ...A) error {
	entries, err := r.classifyAll(xs)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := r.add(entry); err != nil {
			return err
		}
	}
	return nil
}

// replace removes every item and appends xs, after classifying all of them.
func (r *elementRun[T, A]) replace(xs []A) error {
	entries, err := r.classifyAll(xs)
	if err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := r.add(entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *elementRun[T, A]) classifyAll(xs []A) ([]addEntry, error) {
	entries := make([]addEntry, 0, len(xs))
	for _, x := range xs {
		entry, err := r.spec.classify(x)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *elementRun[T, A]) add(entry addEntry) error {
	container := r.materialize()
	if container == nil {
		return errNoOwner(r.spec.typeName + ".Add")
	}

	var el *etree.Element
	if entry.clone != nil {
		base, unit := indent.ChildIndent(container), indent.DetectUnit(container)
		el = entry.clone.Copy()
		xmltree.AppendElement(container, el)
		indent.Reindent(el, base, unit)
	} else {
		el = xmltree.InsertNewElement(container, r.spec.itemTag)
		entry.fill(el)
	}
	r.items = append(r.items, el)
	r.notify("add")
	return nil
}

// Remove detaches the first item whose identity key equals x's. It reports false, with the
// tree untouched, when there is none.
func (r *elementRun[T, A]) Remove(x A) (bool, error) {
	i, err := r.IndexOf(x)
	if err != nil || i < 0 {
		return false, err
	}
	_, err = r.RemoveAt(i)
	return err == nil, err
}

// RemoveAt detaches the item at i together with its indentation run and returns it. A
// collapsing run removes its container when it becomes empty.
func (r *elementRun[T, A]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(r.items) {
		return zero, errors.ValidationError("index out of range").
			WithContext("operation", r.spec.typeName+".RemoveAt").
			WithContext("index", i).
			WithContext("len", len(r.items)).
			Build()
	}
	el := r.items[i]
	xmltree.RemoveChildElement(r.container, el)
	r.items = slices.Delete(r.items, i, i+1)

	if r.spec.collapse && len(r.items) == 0 {
		xmltree.RemoveChildElement(r.container.Parent(), r.container)
		r.container = nil
	}
	r.notify("remove")
	return r.spec.wrap(el), nil
}

// Clear removes every item, one at a time from the front.
func (r *elementRun[T, A]) Clear() error {
	for len(r.items) > 0 {
		if _, err := r.RemoveAt(0); err != nil {
			return err
		}
	}
	return nil
}

// InsertAt is not supported: items can only be appended.
func (r *elementRun[T, A]) InsertAt(int, A) error {
	return r.unsupported("InsertAt")
}

// Set is not supported: items cannot be replaced in place.
func (r *elementRun[T, A]) Set(int, A) (T, error) {
	var zero T
	return zero, r.unsupported("Set")
}

// InsertAllAt is not supported.
func (r *elementRun[T, A]) InsertAllAt(int, ...A) error {
	return r.unsupported("InsertAllAt")
}

// RemoveAll is not supported.
func (r *elementRun[T, A]) RemoveAll(...A) error {
	return r.unsupported("RemoveAll")
}

// RetainAll is not supported.
func (r *elementRun[T, A]) RetainAll(...A) error {
	return r.unsupported("RetainAll")
}

// RemoveIf is not supported.
func (r *elementRun[T, A]) RemoveIf(func(T) bool) error {
	return r.unsupported("RemoveIf")
}

// LastIndexOf is not supported.
func (r *elementRun[T, A]) LastIndexOf(A) (int, error) {
	return -1, r.unsupported("LastIndexOf")
}

// Backward is not supported: iteration is forward only.
func (r *elementRun[T, A]) Backward() (iter.Seq2[int, T], error) {
	return nil, r.unsupported("Backward")
}

// SubList is not supported.
func (r *elementRun[T, A]) SubList(int, int) ([]T, error) {
	return nil, r.unsupported("SubList")
}

func (r *elementRun[T, A]) unsupported(method string) error {
	return errors.Unsupported(r.spec.typeName + "." + method).Build()
}

func (r *elementRun[T, A]) materialize() *etree.Element {
	if r.container == nil {
		r.container = child(r.owner, r.spec.containerTag)(true)
	}
	return r.container
}

func (r *elementRun[T, A]) notify(op string) {
	if r.onEdit != nil {
		r.onEdit(r.spec.containerTag, op)
	}
}
