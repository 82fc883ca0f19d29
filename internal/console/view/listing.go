package view

import (
	"context"

	"catalog-console/internal/model"
	"catalog-console/internal/notify"
	"catalog-console/internal/product"
)

// Phase is the load state of the listing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ListState is the listing's tagged state. Products is set only when Loaded, Reason only when Failed.
type ListState struct {
	Phase    Phase
	Products []model.Product
	Reason   error
}

// Empty reports a successful load of zero products. A failed load is not empty.
func (s ListState) Empty() bool {
	return s.Phase == PhaseLoaded && len(s.Products) == 0
}

// ListingDeps are the collaborators of the listing view.
type ListingDeps struct {
	Reader  product.Reader
	Deleter product.Deleter
	Sink    notify.Sink
	Nav     Navigator
}

// Listing shows the product collection, a detail modal and delete/edit actions.
type Listing struct {
	lifecycle
	deps ListingDeps

	state     ListState
	modalOpen bool
	selected  *model.Product
}

// NewListing builds a live listing view in the Idle phase.
func NewListing(deps ListingDeps) *Listing {
	v := &Listing{deps: deps}
	v.init()
	return v
}

// State returns the current load state.
func (v *Listing) State() ListState { return v.state }

// ModalOpen reports whether the detail modal is shown.
func (v *Listing) ModalOpen() bool { return v.modalOpen }

// Selected returns the product last opened in the modal, or nil.
func (v *Listing) Selected() *model.Product { return v.selected }

// Mount fetches the collection.
func (v *Listing) Mount(ctx context.Context) {
	v.load(ctx)
}

func (v *Listing) load(ctx context.Context) {
	v.update(func() { v.state = ListState{Phase: PhaseLoading} })

	products, err := v.deps.Reader.List(detach(ctx))
	if err != nil {
		v.deps.Sink.Error(ctx, notify.Message{Text: MsgListFailed})
		v.update(func() { v.state = ListState{Phase: PhaseFailed, Reason: err} })
		return
	}
	v.update(func() { v.state = ListState{Phase: PhaseLoaded, Products: products} })
}

// OpenDetail fetches product id and opens the modal with it.
func (v *Listing) OpenDetail(ctx context.Context, id int) {
	p, err := v.deps.Reader.Detail(detach(ctx), id)
	if err != nil {
		v.deps.Sink.Error(ctx, notify.Message{Text: MsgDetailFailed})
		return
	}
	v.update(func() {
		v.selected = &p
		v.modalOpen = true
	})
}

// CloseModal hides the modal. The selection is kept.
func (v *Listing) CloseModal() {
	v.update(func() { v.modalOpen = false })
}

// Delete removes product id and, on success, re-fetches the whole collection.
func (v *Listing) Delete(ctx context.Context, id int) {
	if err := v.deps.Deleter.Delete(detach(ctx), id); err != nil {
		v.deps.Sink.Error(ctx, notify.Message{Text: MsgDeleteFailed})
		return
	}

	v.deps.Sink.Success(ctx, notify.Message{Text: MsgDeleted})
	if v.Alive() {
		v.load(ctx)
	}
}

// Edit navigates to the registration screen in edit mode.
func (v *Listing) Edit(id int) {
	v.deps.Nav.Navigate(RegistrationPath(id))
}
