// Package services provides domain services of the order engine that do not
// belong to a single aggregate.
//
// The package includes:
//   - PriceCalculator: subtotal, coupon discount, delivery fee and total of a checkout
//   - CouponPolicy / StaticCouponPolicy: coupon code to discount rate
//   - DeliveryFeePolicy / DistanceFeePolicy: delivery fee per address and method
//   - PlanEffects: the side effects owed after a committed status transition
package services
