// Package delivery provides the Delivery value object: one validated shipment
// request carrying a destination address, a billable weight, the freight type
// code that selects the pricing strategy, and the recipient.
//
// Key business rules:
//   - A Delivery only exists through NewDelivery; invalid input never yields an instance
//   - Fields are checked in order address, weight, freight type, recipient and
//     the first violation is the one reported
//   - A Delivery is immutable; derived values (e.g. after a promotion) are new
//     instances built through the same constructor
package delivery
