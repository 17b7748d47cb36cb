package wizard

import (
	"errors"
	"time"

	"storecourier/internal/core/domain/model/directory"
	"storecourier/internal/core/domain/model/kernel"
)

var ErrFlowIsNotConstructed = errors.New("Flow must be created via NewFlow constructor")

// Flow is the aggregate root of one composition session. It owns the wizard State
// and the store directory fetched when the session started; the directory is never
// refreshed for the lifetime of the flow.
type Flow struct {
	id        kernel.UUID
	state     State
	directory *directory.Index
	submitted bool
	createdAt time.Time
	updatedAt time.Time
	revision  uint64

	isConstructed bool
}

func NewFlow(id kernel.UUID, dir *directory.Index, now time.Time) (*Flow, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if dir == nil {
		return nil, errors.New("flow requires a store directory")
	}
	return &Flow{
		id:            id,
		state:         NewState(),
		directory:     dir,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

func (f *Flow) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlowIsNotConstructed
	}
	return nil
}

func (f *Flow) ID() kernel.UUID {
	return f.id
}

// State returns a copy; mutate through the Flow methods.
func (f *Flow) State() State {
	return f.state.clone()
}

func (f *Flow) Directory() *directory.Index {
	return f.directory
}

// Submitted is true after a successful submission until the next forward action.
func (f *Flow) Submitted() bool {
	return f.submitted
}

func (f *Flow) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Flow) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *Flow) SetDeliveryType(t DeliveryType, now time.Time) error {
	if err := f.state.SetDeliveryType(t); err != nil {
		return err
	}
	f.submitted = false
	f.touch(now)
	return nil
}

func (f *Flow) SetOriginStore(sel Selection, now time.Time) error {
	if err := f.state.SetOriginStore(sel); err != nil {
		return err
	}
	f.touch(now)
	return nil
}

func (f *Flow) SetDestinationStore(sel Selection, now time.Time) error {
	if err := f.state.SetDestinationStore(sel); err != nil {
		return err
	}
	f.touch(now)
	return nil
}

func (f *Flow) SetStep(target Step, now time.Time) error {
	if err := f.state.SetStep(target); err != nil {
		return err
	}
	f.touch(now)
	return nil
}

func (f *Flow) SetDetails(d Details, now time.Time) error {
	if err := f.state.SetDetails(d); err != nil {
		return err
	}
	f.touch(now)
	return nil
}

// Restart is the explicit user restart: state is discarded, the directory kept.
func (f *Flow) Restart(now time.Time) {
	f.state.Reset()
	f.submitted = false
	f.touch(now)
}

// MarkSubmitted records a successful submission and resets the state for the next request.
func (f *Flow) MarkSubmitted(now time.Time) {
	f.state.Reset()
	f.submitted = true
	f.touch(now)
}

// IdleSince reports whether the flow has not been touched since t.
func (f *Flow) IdleSince(t time.Time) bool {
	return f.updatedAt.Before(t)
}

// Clone returns an independent copy sharing only the read-only directory.
func (f *Flow) Clone() *Flow {
	c := *f
	c.state = f.state.clone()
	return &c
}

// Revision counts the stored updates of the flow. Repositories compare it on update
// and advance it with NextRevision.
func (f *Flow) Revision() uint64 {
	return f.revision
}

func (f *Flow) NextRevision() {
	f.revision++
}

func (f *Flow) touch(now time.Time) {
	f.updatedAt = now
}
