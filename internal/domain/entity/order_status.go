package entity

import "strings"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// AllOrderStatuses lists statuses in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// OrderStatusNames returns AllOrderStatuses as strings.
func OrderStatusNames() []string {
	statuses := AllOrderStatuses()
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, string(status))
	}

	return names
}

// ParseOrderStatus matches case-insensitively and returns the lowercase status.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	normalized := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range AllOrderStatuses() {
		if status == normalized {
			return status, true
		}
	}

	return "", false
}
