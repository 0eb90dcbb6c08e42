package photogrid

import (
	"log/slog"

	"github.com/idursun/photogrid/internal/photo"
)

// ItemTapListener receives taps on photos of a view-only grid.
type ItemTapListener interface {
	OnItemTap(slot int, src *photo.Source)
}

// EditableListener is the listener of an editable grid. It also receives item
// taps.
type EditableListener interface {
	ItemTapListener
	// OnDeleteTap is called after src was removed, with the position it had.
	OnDeleteTap(position int, src *photo.Source)
	OnAddTap()
}

type ItemTapFunc func(slot int, src *photo.Source)

func (f ItemTapFunc) OnItemTap(slot int, src *photo.Source) {
	f(slot, src)
}

// EditableFuncs adapts plain functions to EditableListener. Nil functions are
// skipped.
type EditableFuncs struct {
	ItemTap   func(slot int, src *photo.Source)
	DeleteTap func(position int, src *photo.Source)
	AddTap    func()
}

func (f EditableFuncs) OnItemTap(slot int, src *photo.Source) {
	if f.ItemTap != nil {
		f.ItemTap(slot, src)
	}
}

func (f EditableFuncs) OnDeleteTap(position int, src *photo.Source) {
	if f.DeleteTap != nil {
		f.DeleteTap(position, src)
	}
}

func (f EditableFuncs) OnAddTap() {
	if f.AddTap != nil {
		f.AddTap()
	}
}

// Dispatcher turns slot gestures into listener calls. Which listener is used
// depends on whether the presenter is editable. Slots are looked up when the
// gesture is handled, never when it was wired.
type Dispatcher struct {
	presenter *Presenter
	item      ItemTapListener
	editable  EditableListener
	logger    *slog.Logger
}

func NewDispatcher(presenter *Presenter) *Dispatcher {
	return &Dispatcher{
		presenter: presenter,
		logger:    presenter.logger,
	}
}

// SetItemTapListener replaces the view-only listener. nil removes it.
func (d *Dispatcher) SetItemTapListener(l ItemTapListener) {
	d.item = l
}

// SetEditableListener replaces the editable listener. nil removes it.
func (d *Dispatcher) SetEditableListener(l EditableListener) {
	d.editable = l
}

func (d *Dispatcher) itemListener() ItemTapListener {
	if d.presenter.Editable() {
		if d.editable == nil {
			return nil
		}
		return d.editable
	}
	return d.item
}

// TapSlot handles a tap on the slot at index. Item slots call OnItemTap, the
// add slot calls OnAddTap. It reports whether a listener was called.
func (d *Dispatcher) TapSlot(index int) bool {
	slot := d.presenter.SlotFor(index)
	switch slot.Kind {
	case SlotItem:
		l := d.itemListener()
		if l == nil {
			d.logger.Debug("item tap dropped, no listener", "slot", index)
			return false
		}
		l.OnItemTap(index, slot.Source)
		return true
	case SlotAdd:
		if d.editable == nil {
			d.logger.Debug("add tap dropped, no listener", "slot", index)
			return false
		}
		d.editable.OnAddTap()
		return true
	}
	return false
}

// TapDelete removes the photo in the slot at index and then calls OnDeleteTap
// with the position it was removed from. Nothing happens for view-only grids,
// for slots that do not hold a photo, or when no editable listener is set.
func (d *Dispatcher) TapDelete(index int) (bool, error) {
	if !d.presenter.Editable() || d.editable == nil {
		return false, nil
	}
	slot := d.presenter.SlotFor(index)
	if slot.Kind != SlotItem {
		return false, nil
	}
	removal, err := d.presenter.RemoveByIdentity(slot.Source)
	if err != nil {
		d.logger.Error("delete tap failed", "slot", index, "error", err)
		return false, err
	}
	d.editable.OnDeleteTap(removal.Position, slot.Source)
	return true, nil
}

// Remove deletes src on behalf of the owner, as if its delete control was
// tapped. Unlike TapDelete it reports a foreign or stale source as an error.
func (d *Dispatcher) Remove(src *photo.Source) (Removal, error) {
	removal, err := d.presenter.RemoveByIdentity(src)
	if err != nil {
		d.logger.Error("remove failed", "source", src, "error", err)
		return Removal{}, err
	}
	if d.editable != nil {
		d.editable.OnDeleteTap(removal.Position, src)
	}
	return removal, nil
}
