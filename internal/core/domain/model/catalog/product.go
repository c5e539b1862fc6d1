// Package catalog holds the read-only view of products that the order engine
// prices carts and orders against. Products are managed elsewhere.
package catalog

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Product is a sellable item owned by one producer.
type Product struct {
	id         kernel.UUID
	producerID kernel.UUID
	name       string
	price      decimal.Decimal
	stock      int
}

func RestoreProduct(id, producerID kernel.UUID, name string, price decimal.Decimal, stock int) *Product {
	return &Product{id: id, producerID: producerID, name: name, price: price, stock: stock}
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) ProducerID() kernel.UUID {
	return p.producerID
}

func (p *Product) Name() string {
	return p.name
}

// Price is the current catalog price; orders snapshot it at purchase time.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}
