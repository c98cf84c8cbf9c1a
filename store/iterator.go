package store

import (
	"bytes"

	"github.com/google/btree"
)

// btreeIter walks over a snapshot of the items that were in the requested
// range of the btree when the iterator was created. Taking a snapshot keeps
// us clear of the "no writes while iterating" contract of the btree.
type btreeIter struct {
	items []btree.Item
	idx   int
}

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	var iter btreeIter
	insert := func(item btree.Item) bool {
		iter.items = append(iter.items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(insert)
	case start == nil: // end != nil
		bt.AscendLessThan(bkey{end}, insert)
	case end == nil: // start != nil
		bt.AscendGreaterOrEqual(bkey{start}, insert)
	default: // both != nil
		bt.AscendRange(bkey{start}, bkey{end}, insert)
	}

	return &iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	var iter btreeIter
	insert := func(item btree.Item) bool {
		iter.items = append(iter.items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Descend(insert)
	case start == nil: // end != nil
		bt.DescendLessOrEqual(bkeyLess{end}, insert)
	case end == nil: // start != nil
		bt.DescendGreaterThan(bkeyLess{start}, insert)
	default: // both != nil
		bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
	}

	return &iter
}

func (b *btreeIter) wrap(parent Iterator) *itemIter {
	return b.wrapDir(parent, false)
}

func (b *btreeIter) wrapReverse(parent Iterator) *itemIter {
	return b.wrapDir(parent, true)
}

func (b *btreeIter) wrapDir(parent Iterator, reverse bool) *itemIter {
	iter := &itemIter{
		wrap:    b,
		parent:  parent,
		reverse: reverse,
	}
	if err := iter.skipAllDeleted(); err != nil {
		// the parent iterator errored while forwarding, nothing
		// sensible left to return
		panic(err)
	}
	return iter
}

func (b *btreeIter) valid() bool {
	return b.idx < len(b.items)
}

func (b *btreeIter) next() {
	b.idx++
}

// get requires this is valid, gets what we are pointing at.
func (b *btreeIter) get() keyer {
	return b.items[b.idx].(keyer)
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

// itemIter combines the btree cache content with the iterator over the
// backing store, taking into consideration overwrites and deletes.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator
	// reverse inverts the key comparison, so the merge follows the
	// descending order of both sources
	reverse bool
}

var _ Iterator = (*itemIter)(nil)

// Valid implements Iterator and returns true iff it can be read.
func (i *itemIter) Valid() bool {
	return i.wrap.valid() || i.parentValid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *itemIter) Next() error {
	// advance either us, parent, or both
	switch i.firstKey() {
	case us:
		i.wrap.next()
	case both:
		i.wrap.next()
		fallthrough
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("advanced past the end")
	}

	// keep advancing over all deleted entries
	return i.skipAllDeleted()
}

// Key returns the key of the cursor.
func (i *itemIter) Key() (key []byte) {
	switch i.firstKey() {
	case us, both:
		return i.wrap.get().Key()
	case parent:
		return i.parent.Key()
	default: // none
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *itemIter) Value() (value []byte) {
	switch i.firstKey() {
	case us, both:
		return i.wrap.get().(setItem).value
	case parent:
		return i.parent.Value()
	default: // none
		panic("advanced past the end")
	}
}

// Close releases the Iterator.
func (i *itemIter) Close() {
	i.parent.Close()
	i.wrap.items = nil
}

// skipAllDeleted loops and skips any number of deleted items.
func (i *itemIter) skipAllDeleted() error {
	more := true
	for more {
		var err error
		more, err = i.skipDeleted()
		if err != nil {
			return err
		}
	}
	return nil
}

// skipDeleted jumps over all elements we can safely fast forward,
// return true if skipped, so we can skip again.
func (i *itemIter) skipDeleted() (bool, error) {
	src := i.firstKey()
	if src == us || src == both {
		// if our next is deleted, advance...
		if _, ok := i.wrap.get().(deletedItem); ok {
			i.wrap.next()
			// if parent had the same key, advance parent as well
			if src == both {
				if err := i.parent.Next(); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// firstKey selects the iterator with the lowest key if any.
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if !i.parentValid() {
		if !i.wrap.valid() {
			return none
		}
		return us
	} else if !i.wrap.valid() {
		return parent
	}

	// both are valid... compare keys....
	parKey := i.parent.Key()
	usKey := i.wrap.get().Key()

	cmp := bytes.Compare(parKey, usKey)
	if i.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

// makes sure the parent is non-nil before checking if it is valid
func (i *itemIter) parentValid() bool {
	return (i.parent != nil) && i.parent.Valid()
}
