package statemachine

import (
	"errors"

	"github.com/Bapiggott/BigBoy-sub001/models"
)

// validTransitions is the authoritative lifecycle definition:
// PENDING → CONFIRMED → PREPARING → READY → COMPLETED, with CANCELLED
// reachable from PENDING or CONFIRMED only.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady},
	models.StatusReady:     {models.StatusCompleted},
}

// Build a lookup map for O(1) validation
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for from, tos := range validTransitions {
		for _, to := range tos {
			m[transitionKey{from, to}] = true
		}
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// IsTerminal reports whether a state has no outgoing transitions.
func IsTerminal(status models.OrderStatus) bool {
	return len(validTransitions[status]) == 0
}

// CanCancel reports whether an order may still be cancelled.
// Only PENDING and CONFIRMED orders are inside the cancellation window.
func CanCancel(status models.OrderStatus) bool {
	return transitionMap[transitionKey{status, models.StatusCancelled}]
}

// CanTransition checks whether from → to is a valid lifecycle step.
// The admin override path deliberately bypasses this check.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{from, to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
