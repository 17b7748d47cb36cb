package requestrepo

import (
	"context"
	"errors"

	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/ports"
	"storecourier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements ports.RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a ledger entry. Entries are never updated.
func (r *GormRequestRepository) Add(ctx context.Context, request ports.SubmittedRequest) error {
	if err := request.ID.Validate(); err != nil {
		return err
	}
	if err := request.FlowID.Validate(); err != nil {
		return err
	}
	if request.SubmittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submittedAt")
	}

	dto := fromDomain(request)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID, request)
	return nil
}

// Get returns errs.ObjectNotFoundError for an unknown id.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (ports.SubmittedRequest, error) {
	if err := id.Validate(); err != nil {
		return ports.SubmittedRequest{}, err
	}

	var dto SubmittedRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SubmittedRequest{}, errs.NewObjectNotFoundError("submittedRequest", id.String())
		}
		return ports.SubmittedRequest{}, err
	}

	return toDomain(dto)
}
