// Package promotion provides promotional rules that may lower a delivery's
// billable weight, and the Pipeline that applies them in order.
//
// Rules never mutate a Delivery. A rule that changes something returns a new
// Delivery built through delivery.NewDelivery, so the result is validated again.
package promotion
