// Package section implements the draft/commit editors for each part of the
// resume. Editors never hold the document; they read it from the store and
// write whole sections back through Store.Update.
package section

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/rogersnm/resumecraft/internal/id"
	"github.com/rogersnm/resumecraft/internal/model"
	"github.com/rogersnm/resumecraft/internal/store"
)

// Editor is the create/edit cycle shared by the collection editors.
type Editor[T any] interface {
	// StartCreate resets the draft to empty values and clears the target.
	StartCreate()
	// StartEdit loads entry into the draft and targets its id.
	StartEdit(entry T)
	// Commit validates draft and writes it to the collection.
	Commit(draft T) error
	Remove(id string)
	Cancel()
	Draft() T
	Target() string
}

// collection is the shared implementation behind the work, education and
// project editors.
type collection[T any] struct {
	st   *store.Store
	kind id.EntityType

	idOf     func(T) string
	withID   func(T, string) T
	validate func(T) (T, error)
	empty    func() T
	items    func(model.Resume) []T
	patch    func([]T) store.Patch

	draft  T
	target string
}

func (c *collection[T]) StartCreate() {
	c.draft = c.empty()
	c.target = ""
}

func (c *collection[T]) StartEdit(entry T) {
	c.draft = entry
	c.target = c.idOf(entry)
}

func (c *collection[T]) Cancel() {
	c.StartCreate()
}

func (c *collection[T]) Draft() T {
	return c.draft
}

func (c *collection[T]) Target() string {
	return c.target
}

// List returns the entries in display order.
func (c *collection[T]) List() []T {
	return c.items(c.st.Document())
}

// Get returns the entry with the given id.
func (c *collection[T]) Get(entryID string) (T, bool) {
	return slice.Find(c.List(), func(src T) bool {
		return c.idOf(src) == entryID
	})
}

func (c *collection[T]) Commit(draft T) error {
	_, err := c.Save(draft)
	return err
}

// Save is Commit returning the stored entry. An existing target is replaced
// in place; otherwise the draft gets a fresh id and is appended. On a
// validation failure the draft is kept and nothing is written.
func (c *collection[T]) Save(draft T) (T, error) {
	c.draft = draft
	entry, err := c.validate(draft)
	if err != nil {
		var zero T
		return zero, err
	}

	list := c.List()
	if c.target != "" && c.contains(list, c.target) {
		entry = c.withID(entry, c.target)
		list = slice.Map(list, func(_ int, src T) T {
			if c.idOf(src) == c.target {
				return entry
			}
			return src
		})
	} else {
		entry = c.withID(entry, id.New(c.kind))
		list = append(list, entry)
	}

	c.st.Update(c.patch(list))
	c.StartCreate()
	return entry, nil
}

func (c *collection[T]) contains(list []T, entryID string) bool {
	_, ok := slice.Find(list, func(src T) bool {
		return c.idOf(src) == entryID
	})
	return ok
}

// Remove deletes the entry with the given id. Unknown ids are ignored.
func (c *collection[T]) Remove(entryID string) {
	list := c.List()
	kept := slice.FindAll(list, func(src T) bool {
		return c.idOf(src) != entryID
	})
	if len(kept) == len(list) {
		return
	}
	c.st.Update(c.patch(kept))
	if c.target == entryID {
		c.StartCreate()
	}
}
