package models

import "slices"

// Each status enum carries its full transition table. Handlers reject any
// move that is not in the table, so an already-cancelled order cannot be
// cancelled again and a delivered one cannot leave its terminal state.

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered, OrderCancelled},
	OrderDelivered: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return slices.Contains(orderTransitions[s], to)
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionActive:    {SubscriptionPaused, SubscriptionCancelled},
	SubscriptionPaused:    {SubscriptionActive, SubscriptionCancelled},
	SubscriptionCancelled: {},
}

func (s SubscriptionStatus) Valid() bool {
	_, ok := subscriptionTransitions[s]
	return ok
}

func (s SubscriptionStatus) CanTransition(to SubscriptionStatus) bool {
	return slices.Contains(subscriptionTransitions[s], to)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {},
	PaymentFailed:    {},
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	return slices.Contains(paymentTransitions[s], to)
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:       {TicketInProgress, TicketResolved, TicketClosed},
	TicketInProgress: {TicketResolved, TicketClosed},
	TicketResolved:   {TicketInProgress, TicketClosed},
	TicketClosed:     {},
}

func (s TicketStatus) Valid() bool {
	_, ok := ticketTransitions[s]
	return ok
}

func (s TicketStatus) CanTransition(to TicketStatus) bool {
	return slices.Contains(ticketTransitions[s], to)
}
