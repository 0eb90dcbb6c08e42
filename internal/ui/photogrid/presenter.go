package photogrid

import (
	"fmt"
	"log/slog"

	"github.com/idursun/photogrid/internal/imageloader"
	"github.com/idursun/photogrid/internal/photo"
)

const DefaultMaxSlots = 9

// Presenter maps a list of photo sources onto grid slots. In editable mode a
// trailing add slot is shown while the list is below MaxSlots.
//
// A Presenter is not safe for concurrent use; it is driven from the UI loop.
type Presenter struct {
	list     []*photo.Source
	editable bool
	maxSlots int
	assets   Assets
	onChange func(Change)
	logger   *slog.Logger
}

// Assets are the images the loader falls back to.
type Assets struct {
	Placeholder imageloader.AssetID
	Error       imageloader.AssetID
	Add         imageloader.AssetID
}

var DefaultAssets = Assets{
	Placeholder: imageloader.AssetPlaceholder,
	Error:       imageloader.AssetError,
	Add:         imageloader.AssetAdd,
}

type PresenterOption func(*Presenter)

func WithEditable(editable bool) PresenterOption {
	return func(p *Presenter) {
		p.editable = editable
	}
}

// WithMaxSlots sets the capacity of an editable grid. Negative values are
// treated as zero.
func WithMaxSlots(maxSlots int) PresenterOption {
	return func(p *Presenter) {
		p.maxSlots = max(maxSlots, 0)
	}
}

func WithAssets(assets Assets) PresenterOption {
	return func(p *Presenter) {
		p.assets = assets
	}
}

func WithLogger(logger *slog.Logger) PresenterOption {
	return func(p *Presenter) {
		p.logger = logger
	}
}

func NewPresenter(list []*photo.Source, options ...PresenterOption) *Presenter {
	p := &Presenter{
		maxSlots: DefaultMaxSlots,
		assets:   DefaultAssets,
		logger:   slog.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.list = clone(list)
	return p
}

func clone(list []*photo.Source) []*photo.Source {
	if len(list) == 0 {
		return nil
	}
	return append([]*photo.Source(nil), list...)
}

func (p *Presenter) Editable() bool {
	return p.editable
}

func (p *Presenter) MaxSlots() int {
	return p.maxSlots
}

func (p *Presenter) Len() int {
	return len(p.list)
}

// Items returns a copy of the list. The entries are the presenter's own
// sources, so they can be passed back to RemoveByIdentity.
func (p *Presenter) Items() []*photo.Source {
	return clone(p.list)
}

// OnChange registers the function called after every mutation. Only one
// function is kept; nil removes it.
func (p *Presenter) OnChange(fn func(Change)) {
	p.onChange = fn
}

// SetList replaces the list. nil is an empty list.
func (p *Presenter) SetList(list []*photo.Source) {
	p.list = clone(list)
	p.logger.Debug("photo list replaced", "count", len(p.list))
	p.emit(Change{Kind: ChangeReset})
}

func (p *Presenter) VisibleSlotCount() int {
	n := len(p.list)
	if !p.editable {
		return n
	}
	if n < p.maxSlots {
		return n + 1
	}
	return p.maxSlots
}

// SlotFor returns what the slot at index shows. Indexes outside the visible
// range are Hidden.
func (p *Presenter) SlotFor(index int) SlotState {
	if index < 0 || index >= p.VisibleSlotCount() {
		return SlotState{Kind: SlotHidden}
	}
	if p.editable && index >= p.maxSlots {
		return SlotState{Kind: SlotHidden}
	}
	if index < len(p.list) {
		return SlotState{Kind: SlotItem, Source: p.list[index], Position: index}
	}
	if p.editable && index == len(p.list) && len(p.list) < p.maxSlots {
		return SlotState{Kind: SlotAdd}
	}
	return SlotState{Kind: SlotHidden}
}

// Request builds the loader request for the slot at index. Hidden slots have
// nothing to load.
func (p *Presenter) Request(index int) (imageloader.Request, bool) {
	req := imageloader.Request{
		Placeholder: p.assets.Placeholder,
		Error:       p.assets.Error,
		Fit:         imageloader.FitCenterCrop,
	}
	slot := p.SlotFor(index)
	switch slot.Kind {
	case SlotItem:
		req.Source = slot.Source.DisplaySource()
	case SlotAdd:
		req.Source = p.assets.Add
	default:
		return imageloader.Request{}, false
	}
	return req, true
}

// RemoveByIdentity removes the first entry that is target itself. Entries
// that are only equal in value are left alone, so removing one of two
// duplicates removes exactly the one that was tapped.
//
// When the list was at capacity the add slot reappears, and the change is
// reported as a reset instead of a single removal.
func (p *Presenter) RemoveByIdentity(target *photo.Source) (Removal, error) {
	position := -1
	for i, src := range p.list {
		if src == target {
			position = i
			break
		}
	}
	if position < 0 {
		return Removal{}, fmt.Errorf("removing %s: %w", target, photo.ErrNotFound)
	}

	atCapacity := len(p.list) == p.maxSlots
	p.list = append(p.list[:position], p.list[position+1:]...)

	change := Change{Kind: ChangeRemoved, Position: position}
	if atCapacity {
		change = Change{Kind: ChangeReset}
	}
	p.logger.Debug("photo removed", "position", position, "remaining", len(p.list))
	p.emit(change)
	return Removal{Position: position, Remaining: len(p.list), Change: change}, nil
}

// Names returns a display name per list entry, in list order.
func (p *Presenter) Names() []string {
	names := make([]string, len(p.list))
	for i, src := range p.list {
		names[i] = src.Name()
	}
	return names
}

func (p *Presenter) emit(change Change) {
	if p.onChange != nil {
		p.onChange(change)
	}
}
