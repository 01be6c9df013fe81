// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and staleness. Candidate dates are stored as
// text arrays in the day wire format; the version column carries the optimistic
// concurrency token.
type OrderDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Sender                 PartyDTO       `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver               PartyDTO       `gorm:"embedded;embeddedPrefix:receiver_"`
	Status                 string         `gorm:"type:varchar(64);not null;index"`
	SenderCandidateDates   pq.StringArray `gorm:"type:text[]"`
	ReceiverCandidateDates pq.StringArray `gorm:"type:text[]"`
	ScheduledPickupAt      *time.Time
	ScheduledDeliveryAt    *time.Time
	PickupTimeslot         string `gorm:"type:varchar(64)"`
	DeliveryTimeslot       string `gorm:"type:varchar(64)"`
	PickupJobRef           string `gorm:"type:varchar(255)"`
	DeliveryJobRef         string `gorm:"type:varchar(255)"`
	Version                int    `gorm:"not null"`
	UpdatedAt              time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PartyDTO represents an embedded booking party within the order table.
// Stores the contact details and address for one end of the journey.
type PartyDTO struct {
	Name     string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(64)"`
	Email    string `gorm:"type:varchar(255)"`
	Street   string `gorm:"type:varchar(255);not null"`
	City     string `gorm:"type:varchar(255);not null"`
	Postcode string `gorm:"type:varchar(32);not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including both parties, candidate dates, the
// booked schedule and job references.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     order.ID().Bytes(),
		Sender:                 partyFromDomain(order.Sender()),
		Receiver:               partyFromDomain(order.Receiver()),
		Status:                 order.Status().String(),
		SenderCandidateDates:   daysToStrings(order.SenderCandidateDates()),
		ReceiverCandidateDates: daysToStrings(order.ReceiverCandidateDates()),
		ScheduledPickupAt:      order.ScheduledPickupAt(),
		ScheduledDeliveryAt:    order.ScheduledDeliveryAt(),
		PickupTimeslot:         order.PickupTimeslot(),
		DeliveryTimeslot:       order.DeliveryTimeslot(),
		PickupJobRef:           order.PickupJobRef(),
		DeliveryJobRef:         order.DeliveryJobRef(),
		Version:                order.Version(),
	}
}

// partyFromDomain flattens a party and its address into the embedded columns.
func partyFromDomain(party order.Party) PartyDTO {
	return PartyDTO{
		Name:     party.Name(),
		Phone:    party.Phone(),
		Email:    party.Email(),
		Street:   party.Address().Street(),
		City:     party.Address().City(),
		Postcode: party.Address().Postcode(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including parties, candidate dates,
// schedule and job references using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}

	receiver, err := partyToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	senderDates, err := stringsToDays(dto.SenderCandidateDates)
	if err != nil {
		return nil, err
	}

	receiverDates, err := stringsToDays(dto.ReceiverCandidateDates)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		sender,
		receiver,
		status,
		senderDates,
		receiverDates,
		dto.ScheduledPickupAt,
		dto.ScheduledDeliveryAt,
		dto.PickupTimeslot,
		dto.DeliveryTimeslot,
		dto.PickupJobRef,
		dto.DeliveryJobRef,
		dto.Version,
	)
}

// partyToDomain rebuilds a party from the embedded columns.
func partyToDomain(dto PartyDTO) (order.Party, error) {
	address, err := kernel.NewAddress(dto.Street, dto.City, dto.Postcode)
	if err != nil {
		return order.Party{}, err
	}

	return order.NewParty(dto.Name, dto.Phone, dto.Email, address)
}

// daysToStrings serialises candidate days into the text array column format.
func daysToStrings(days []kernel.Day) pq.StringArray {
	values := make(pq.StringArray, 0, len(days))
	for _, day := range days {
		values = append(values, day.String())
	}
	return values
}

// stringsToDays parses the text array column back into candidate days.
func stringsToDays(values pq.StringArray) ([]kernel.Day, error) {
	days := make([]kernel.Day, 0, len(values))
	for _, value := range values {
		day, err := kernel.ParseDay(value)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}
