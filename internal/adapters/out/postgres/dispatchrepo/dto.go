// Package dispatchrepo provides data transfer objects and mapping functions for
// the dispatch audit trail. This package implements the repository pattern for
// dispatch records, handling the conversion between domain entities and their
// database representation.
package dispatchrepo

import (
	"time"

	"booking/internal/core/domain/model/dispatch"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting dispatch records.
// The table is append-only: rows are created once and never updated. The
// creation timestamp orders an order's dispatch history.
type RecordDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Leg            string    `gorm:"type:varchar(32);not null"`
	IdempotencyKey string    `gorm:"type:varchar(255);not null"`
	JobRef         string    `gorm:"type:varchar(255)"`
	Outcome        string    `gorm:"type:varchar(32);not null"`
	FailureReason  string    `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName specifies the database table name for dispatch records.
// Overrides GORM's default naming convention to use "dispatch_records".
func (RecordDTO) TableName() string {
	return "dispatch_records"
}

// fromDomain converts a dispatch record to its database representation.
func fromDomain(record *dispatch.Record) RecordDTO {
	return RecordDTO{
		ID:             record.ID().Bytes(),
		OrderID:        record.OrderID().Bytes(),
		Leg:            record.Leg().String(),
		IdempotencyKey: record.IdempotencyKey(),
		JobRef:         record.JobRef(),
		Outcome:        record.Outcome().String(),
		FailureReason:  record.FailureReason(),
	}
}

// toDomain converts a database DTO to a dispatch record using RestoreRecord.
func toDomain(dto RecordDTO) (*dispatch.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	leg, err := order.ParseLeg(dto.Leg)
	if err != nil {
		return nil, err
	}

	outcome, err := dispatch.ParseOutcome(dto.Outcome)
	if err != nil {
		return nil, err
	}

	return dispatch.RestoreRecord(
		id,
		orderID,
		leg,
		dto.IdempotencyKey,
		dto.JobRef,
		outcome,
		dto.FailureReason,
	)
}
