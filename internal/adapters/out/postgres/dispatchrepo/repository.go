package dispatchrepo

import (
	"context"

	"booking/internal/core/domain/model/dispatch"
	"booking/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDispatchRecordRepository implements DispatchRecordRepository using GORM.
type GormDispatchRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRecordRepository creates a new GORM dispatch record repository.
func NewGormDispatchRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRecordRepository {
	return &GormDispatchRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a dispatch record to the audit trail.
func (r *GormDispatchRecordRepository) Add(ctx context.Context, record *dispatch.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllForOrder retrieves the dispatch history of one order, oldest attempt first.
func (r *GormDispatchRecordRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*dispatch.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*dispatch.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
