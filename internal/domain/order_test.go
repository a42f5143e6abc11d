package domain

import (
	"testing"
	"time"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to shipped skips states", OrderStatusPending, OrderStatusShipped, false},
		{"confirmed to processing", OrderStatusConfirmed, OrderStatusProcessing, true},
		{"confirmed to cancelled", OrderStatusConfirmed, OrderStatusCancelled, true},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"processing to cancelled is too late", OrderStatusProcessing, OrderStatusCancelled, false},
		{"shipped to out for delivery", OrderStatusShipped, OrderStatusOutForDelivery, true},
		{"shipped to returned", OrderStatusShipped, OrderStatusReturned, true},
		{"out for delivery to delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"delivered to refunded", OrderStatusDelivered, OrderStatusRefunded, true},
		{"delivered back to pending", OrderStatusDelivered, OrderStatusPending, false},
		{"cancelled to refunded", OrderStatusCancelled, OrderStatusRefunded, true},
		{"refunded is terminal", OrderStatusRefunded, OrderStatusReturned, false},
		{"no self transition", OrderStatusShipped, OrderStatusShipped, false},
		{"unknown status", OrderStatus("teleported"), OrderStatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("%s -> %s: CanTransitionTo() = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestOrder_CanCancel(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed} {
		if !(Order{Status: s}).CanCancel() {
			t.Errorf("order in %s should be cancellable", s)
		}
	}
	for _, s := range []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if (Order{Status: s}).CanCancel() {
			t.Errorf("order in %s should not be cancellable", s)
		}
	}
}

func TestOrder_CanTrack(t *testing.T) {
	o := Order{Status: OrderStatusShipped}
	if o.CanTrack() {
		t.Error("order without tracking number should not be trackable")
	}

	o.TrackingNumber = "EST1234567890"
	if !o.CanTrack() {
		t.Error("shipped order with tracking number should be trackable")
	}

	o.Status = OrderStatusDelivered
	if o.CanTrack() {
		t.Error("delivered order should not be trackable")
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	if !OrderStatusOutForDelivery.Valid() {
		t.Error("out_for_delivery should be a valid status")
	}
	if OrderStatus("lost").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestOrder_HistoryIsAppendOnlyShape(t *testing.T) {
	now := time.Now()
	o := Order{
		Status: OrderStatusConfirmed,
		History: []StatusChange{
			{Status: OrderStatusPending, At: now},
			{Status: OrderStatusConfirmed, At: now},
		},
	}
	if len(o.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(o.History))
	}
	if o.History[0].Status != OrderStatusPending || o.History[1].Status != OrderStatusConfirmed {
		t.Error("history should record pending then confirmed")
	}
}
