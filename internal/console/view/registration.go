package view

import (
	"context"
	"strconv"
	"strings"

	"catalog-console/internal/notify"
	"catalog-console/internal/product"
)

const registrationGateKey = "product-registration"

// Gate serialises submits of one user across requests.
type Gate interface {
	TryAcquire(key string) (release func(), ok bool)
	Busy(key string) bool
}

// Mode tells create from edit.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
	// ModeInvalid is an edit request with an unusable identifier. The form is inert.
	ModeInvalid
)

// RegistrationDeps are the collaborators of the registration view.
type RegistrationDeps struct {
	Reader  product.Reader
	Creator product.Creator
	Updater product.Updater
	Sink    notify.Sink
	Nav     Navigator
	Gate    Gate
}

// Registration is the create-or-edit product form.
type Registration struct {
	lifecycle
	deps RegistrationDeps

	mode    Mode
	id      int
	fetched bool

	form       ProductForm
	errors     FieldErrors
	submitting bool
}

// NewRegistration builds the view from the raw id query value. An empty value selects create mode,
// a positive integer selects edit mode, anything else is rejected.
func NewRegistration(deps RegistrationDeps, rawID string) *Registration {
	v := &Registration{deps: deps, mode: ModeCreate}
	if rawID = strings.TrimSpace(rawID); rawID != "" {
		id, err := strconv.Atoi(rawID)
		if err != nil || id <= 0 {
			v.mode = ModeInvalid
		} else {
			v.mode = ModeEdit
			v.id = id
		}
	}
	v.init()
	return v
}

func (v *Registration) Mode() Mode          { return v.mode }
func (v *Registration) ID() int             { return v.id }
func (v *Registration) Form() ProductForm   { return v.form }
func (v *Registration) Errors() FieldErrors { return v.errors }

// SubmitDisabled reports whether a submit is in flight for this view or for the user.
func (v *Registration) SubmitDisabled() bool {
	return v.mode == ModeInvalid || v.submitting || v.deps.Gate.Busy(registrationGateKey)
}

// Mount pre-fills the form in edit mode. The record is fetched at most once per view.
func (v *Registration) Mount(ctx context.Context) {
	if v.mode == ModeInvalid {
		v.deps.Sink.Error(ctx, notify.Message{Text: MsgInvalidProductID})
		return
	}
	if v.mode != ModeEdit || v.fetched {
		return
	}
	v.fetched = true

	p, err := v.deps.Reader.Detail(detach(ctx), v.id)
	if err != nil {
		v.deps.Sink.Error(ctx, notify.Message{Text: MsgLoadForEditError})
		return
	}
	v.update(func() { v.form = FormFromProduct(p) })
}

// Submit validates form and creates or updates the product. Invalid input never reaches the network.
func (v *Registration) Submit(ctx context.Context, form ProductForm) {
	if v.mode == ModeInvalid {
		return
	}
	v.update(func() {
		v.form = form
		v.errors = nil
	})

	fields, errs := form.Validate()
	if len(errs) > 0 {
		v.update(func() { v.errors = errs })
		return
	}

	release, ok := v.deps.Gate.TryAcquire(registrationGateKey)
	if !ok {
		return
	}
	defer release()

	v.update(func() { v.submitting = true })
	defer v.update(func() { v.submitting = false })

	if v.mode == ModeEdit {
		if err := v.deps.Updater.Update(detach(ctx), v.id, fields.UpdateInput()); err != nil {
			v.deps.Sink.Error(ctx, notify.Message{Text: MsgUpdateFailed})
			return
		}
		v.deps.Sink.Success(ctx, notify.Message{Text: MsgUpdated})
	} else {
		if err := v.deps.Creator.Create(detach(ctx), fields.CreateInput()); err != nil {
			v.deps.Sink.Error(ctx, notify.Message{Text: MsgCreateFailed})
			return
		}
		v.deps.Sink.Success(ctx, notify.Message{Text: MsgCreated})
	}

	v.deps.Nav.Navigate(PathProducts)
}
