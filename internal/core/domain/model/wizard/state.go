package wizard

import (
	"time"

	"storecourier/internal/pkg/errs"
)

// State is everything collected by one wizard session.
//
// Invariants:
//   - step increases only through SetDeliveryType, SetOriginStore and SetDestinationStore
//   - step decreases only through SetStep
//   - a destination, when present, never shares its store with the origin
type State struct {
	deliveryType DeliveryType
	origin       *Selection
	destination  *Selection
	details      Details
	step         Step
}

// NewState starts a session at TypeSelect.
func NewState() State {
	return State{step: TypeSelect}
}

func (s State) Step() Step {
	return s.step
}

func (s State) DeliveryType() DeliveryType {
	return s.deliveryType
}

func (s State) Origin() (Selection, bool) {
	if s.origin == nil {
		return Selection{}, false
	}
	return *s.origin, true
}

func (s State) Destination() (Selection, bool) {
	if s.destination == nil {
		return Selection{}, false
	}
	return *s.destination, true
}

func (s State) Details() Details {
	return s.details
}

// SetDeliveryType stores the type and moves TypeSelect -> OriginSelect.
func (s *State) SetDeliveryType(t DeliveryType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	next, err := s.step.Next(ActionSetDeliveryType)
	if err != nil {
		return err
	}
	s.deliveryType = t
	s.step = next
	return nil
}

// SetOriginStore stores the origin and moves OriginSelect -> DestinationSelect.
// A destination kept from an earlier pass is dropped if it now shares the origin's store.
func (s *State) SetOriginStore(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}
	next, err := s.step.Next(ActionSetOriginStore)
	if err != nil {
		return err
	}
	if s.destination != nil && s.destination.SameStore(sel) {
		s.destination = nil
	}
	s.origin = &sel
	s.step = next
	return nil
}

// SetDestinationStore stores the destination and moves DestinationSelect -> DetailsEntry.
// The origin's store is rejected with SameStoreConflictError and the destination stays unset.
func (s *State) SetDestinationStore(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}
	if s.origin == nil {
		return errs.NewValueIsRequiredError("originSelection")
	}
	if s.origin.SameStore(sel) {
		return NewSameStoreConflictError(sel.Store().ID(), sel.Store().Name())
	}
	next, err := s.step.Next(ActionSetDestinationStore)
	if err != nil {
		return err
	}
	s.destination = &sel
	s.step = next
	return nil
}

// SetStep navigates back to an earlier step. Collected values are kept so that
// moving forward again shows the previous choices.
func (s *State) SetStep(target Step) error {
	prev, err := s.step.Back(target)
	if err != nil {
		return err
	}
	s.step = prev
	return nil
}

// SetDetails replaces the shipment page values. Only allowed on DetailsEntry.
func (s *State) SetDetails(d Details) error {
	if s.step != DetailsEntry {
		return &TransitionRejectedError{From: s.step, Action: ActionSetDetails}
	}
	s.details = d
	return nil
}

// Reset discards everything and returns to TypeSelect.
func (s *State) Reset() {
	*s = NewState()
}

// ValidateForSubmission checks, in order: origin, destination, item type, delivery method,
// route, special option and, for scheduled pickups, a schedule that is not in the past.
func (s State) ValidateForSubmission(now time.Time, loc *time.Location) error {
	if s.origin == nil {
		return errs.NewValueIsRequiredError("originSelection")
	}
	if s.destination == nil {
		return errs.NewValueIsRequiredError("destinationSelection")
	}
	return s.details.Validate(now, loc)
}

func (s State) clone() State {
	c := s
	if s.origin != nil {
		o := *s.origin
		c.origin = &o
	}
	if s.destination != nil {
		d := *s.destination
		c.destination = &d
	}
	return c
}
