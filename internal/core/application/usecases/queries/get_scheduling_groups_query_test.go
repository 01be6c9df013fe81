package queries_test

import (
	"testing"

	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/order"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSchedulingGroupsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetSchedulingGroupsQuery(order.PickupLeg, 5)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, order.PickupLeg, query.Leg())
	assert.Equal(t, 5, query.HorizonDays())
}

func TestNewGetSchedulingGroupsQuery_UnknownLeg(t *testing.T) {
	_, err := queries.NewGetSchedulingGroupsQuery(order.UnknownLeg, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetSchedulingGroupsQuery_ZeroHorizon(t *testing.T) {
	_, err := queries.NewGetSchedulingGroupsQuery(order.DeliveryLeg, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "horizon days")
}

func TestNewGetSchedulingGroupsQuery_NegativeHorizon(t *testing.T) {
	_, err := queries.NewGetSchedulingGroupsQuery(order.DeliveryLeg, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetSchedulingGroupsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetSchedulingGroupsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetSchedulingGroupsQueryIsNotConstructed)
}
