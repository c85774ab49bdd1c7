package order_test

import (
	"fmt"
	"testing"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Confirmed,
		order.Assigned,
		order.OutForDelivery,
		order.Delivered,
		order.Cancelled,
	}
}

// transitionTable mirrors the authoritative transition map for assertions.
func transitionTable() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Pending:        {order.Confirmed, order.Cancelled},
		order.Confirmed:      {order.Assigned, order.Cancelled},
		order.Assigned:       {order.OutForDelivery, order.Cancelled},
		order.OutForDelivery: {order.Delivered, order.Cancelled},
		order.Delivered:      {},
		order.Cancelled:      {},
	}
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Assigned))
		assert.Equal(t, 4, int(order.OutForDelivery))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := append([]order.Status{order.Unknown}, allValidStatuses()...)

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Confirmed, "confirmed"},
			{order.Assigned, "assigned"},
			{order.OutForDelivery, "out_for_delivery"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all wire names", func(t *testing.T) {
		for _, expected := range allValidStatuses() {
			parsed, err := order.StatusFromString(expected.String())

			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("should require non-empty input", func(t *testing.T) {
		_, err := order.StatusFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		for _, name := range []string{"shipped", "PENDING", "out for delivery", "done"} {
			_, err := order.StatusFromString(name)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("other statuses are not terminal", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Assigned, order.OutForDelivery} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_AllowedTransitions(t *testing.T) {
	t.Run("should match the transition table for every status", func(t *testing.T) {
		for current, expected := range transitionTable() {
			t.Run(current.String(), func(t *testing.T) {
				assert.Equal(t, expected, current.AllowedTransitions())
			})
		}
	})

	t.Run("terminal statuses return empty sets", func(t *testing.T) {
		assert.Empty(t, order.Delivered.AllowedTransitions())
		assert.Empty(t, order.Cancelled.AllowedTransitions())
	})

	t.Run("invalid statuses return empty sets", func(t *testing.T) {
		assert.Empty(t, order.Unknown.AllowedTransitions())
		assert.Empty(t, order.Status(42).AllowedTransitions())
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every table-approved edge", func(t *testing.T) {
		for current, allowed := range transitionTable() {
			for _, next := range allowed {
				t.Run(fmt.Sprintf("%s to %s", current, next), func(t *testing.T) {
					result, err := current.TransitionTo(next)

					require.NoError(t, err)
					assert.Equal(t, next, result)
				})
			}
		}
	})

	t.Run("should reject every pair not in the table", func(t *testing.T) {
		for _, current := range allValidStatuses() {
			allowed := transitionTable()[current]
			for _, next := range allValidStatuses() {
				if contains(allowed, next) {
					continue
				}

				t.Run(fmt.Sprintf("%s to %s", current, next), func(t *testing.T) {
					result, err := current.TransitionTo(next)

					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
					assert.Equal(t, order.Unknown, result)
					assert.Contains(t, err.Error(), current.String())
					assert.Contains(t, err.Error(), next.String())
				})
			}
		}
	})

	t.Run("should reject self-transitions", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			_, err := status.TransitionTo(status)

			require.Error(t, err, "%s to itself should be rejected", status)
		}
	})

	t.Run("should reject skipping statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Assigned)
		require.Error(t, err)

		_, err = order.Pending.TransitionTo(order.Delivered)
		require.Error(t, err)

		_, err = order.Confirmed.TransitionTo(order.OutForDelivery)
		require.Error(t, err)
	})

	t.Run("should reject any transition out of terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, next := range allValidStatuses() {
				_, err := terminal.TransitionTo(next)

				require.Error(t, err, "%s to %s should be rejected", terminal, next)
			}
		}
	})

	t.Run("should reject invalid target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)

		_, err = order.Pending.TransitionTo(order.Status(99))
		require.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should agree with the transition table", func(t *testing.T) {
		for current, allowed := range transitionTable() {
			for _, next := range allValidStatuses() {
				assert.Equal(t, contains(allowed, next), current.CanTransitionTo(next),
					"%s -> %s", current, next)
			}
		}
	})
}
