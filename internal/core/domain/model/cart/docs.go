// Package cart contains the Cart aggregate, a user's mutable pre-order basket.
package cart
