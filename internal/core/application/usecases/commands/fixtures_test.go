package commands_test

import (
	"testing"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// Order fixtures shared by the handler tests in this package.

func testUUID(t *testing.T, value string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(value)
	require.NoError(t, err)
	return id
}

func testDay(t *testing.T, value string) kernel.Day {
	t.Helper()
	day, err := kernel.ParseDay(value)
	require.NoError(t, err)
	return day
}

func testDays(t *testing.T, values ...string) []kernel.Day {
	t.Helper()
	result := make([]kernel.Day, 0, len(values))
	for _, value := range values {
		result = append(result, testDay(t, value))
	}
	return result
}

func testParty(t *testing.T, name string, street string, city string, postcode string) order.Party {
	t.Helper()
	address, err := kernel.NewAddress(street, city, postcode)
	require.NoError(t, err)
	party, err := order.NewParty(name, "+44 121 555 0199", "", address)
	require.NoError(t, err)
	return party
}

func testSender(t *testing.T) order.Party {
	t.Helper()
	return testParty(t, "Ada Brown", "12 Harborne Road", "Birmingham", "B15 3AA")
}

func testReceiver(t *testing.T) order.Party {
	t.Helper()
	return testParty(t, "Bo Clarke", "3 Deansgate", "Manchester", "M3 2AY")
}

// testOrderInStatus restores an order fixture directly in the given status,
// with empty schedule fields and version 1.
func testOrderInStatus(
	t *testing.T,
	id kernel.UUID,
	status order.Status,
	senderDates []kernel.Day,
	receiverDates []kernel.Day,
) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(id, testSender(t), testReceiver(t), status,
		senderDates, receiverDates, nil, nil, "", "", "", "", 1)
	require.NoError(t, err)
	return restored
}
