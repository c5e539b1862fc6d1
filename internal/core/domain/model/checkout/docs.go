// Package checkout holds the Checkout session bound to a pending order and
// the price breakdown (subtotal, discount, delivery fee, total) it carries.
package checkout
