package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database under an optimistic
// concurrency check. The write is conditional on the version the aggregate
// was loaded with and increments the version column. The parties are
// immutable after creation and are not rewritten. Zero values such as a
// cleared schedule must reach the database, so the mutable columns are
// selected explicitly.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(
			"status",
			"sender_candidate_dates", "receiver_candidate_dates",
			"scheduled_pickup_at", "scheduled_delivery_at",
			"pickup_timeslot", "delivery_timeslot",
			"pickup_job_ref", "delivery_job_ref",
			"version",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a lost concurrency race from a missing
// row after a conditional update touched nothing.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return errs.NewVersionIsInvalidError(
		"order",
		fmt.Errorf("order %s was modified concurrently", aggregate.ID()),
	)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSchedulable retrieves all orders in the scheduling pool: the
// schedulable statuses plus collection_scheduled, whose delivery leg is
// still open.
func (r *GormOrderRepository) GetAllSchedulable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", schedulingPoolStatuses()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllStalePending retrieves all orders stuck in an availability pending
// status whose last update is older than the cutoff.
func (r *GormOrderRepository) GetAllStalePending(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ? AND updated_at < ?", availabilityPendingStatuses(), before).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// toDomainAll converts a result set to domain aggregates.
func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// schedulingPoolStatuses lists the stored status values of the scheduling pool.
func schedulingPoolStatuses() []string {
	return []string{
		order.SenderAvailabilityConfirmed.String(),
		order.ReceiverAvailabilityConfirmed.String(),
		order.PendingApproval.String(),
		order.ScheduledDatesPending.String(),
		order.CollectionScheduled.String(),
	}
}

// availabilityPendingStatuses lists the stored status values awaiting a party response.
func availabilityPendingStatuses() []string {
	return []string{
		order.SenderAvailabilityPending.String(),
		order.ReceiverAvailabilityPending.String(),
	}
}
