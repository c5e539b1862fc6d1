package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. It resolves the buyer, snapshots
// the price and producer of every product and persists the order with all
// of its items in a single transaction. Stock is not touched here; it is
// debited once the payment is approved.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle creates the order in its own transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := h.CreateWithin(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// CreateWithin creates the order using repositories bound to a transaction
// owned by the caller. It implements OrderCreator.
func (h *CreateOrderCommandHandler) CreateWithin(ctx context.Context, repos OrderRepos, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	exists, err := repos.UserRepository().Exists(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID().String())
	}

	products, err := h.resolveProducts(ctx, repos, cmd.Lines())
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		product := products[line.ProductID.String()]
		item, err := order.NewItem(kernel.NewUUID(), product.ID(), product.ProducerID(), line.Quantity, product.Price(), line.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.UserID(), items, cmd.ShippingAddress(), cmd.PaymentMethod(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repos.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// resolveProducts loads all referenced products in one query. Any unknown
// product rejects the whole order.
func (h *CreateOrderCommandHandler) resolveProducts(
	ctx context.Context,
	repos OrderRepos,
	lines []OrderLine,
) (map[string]*catalog.Product, error) {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID.String()]; ok {
			continue
		}
		seen[line.ProductID.String()] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	found, err := repos.CatalogRepository().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*catalog.Product, len(found))
	for _, p := range found {
		products[p.ID().String()] = p
	}
	for _, id := range ids {
		if _, ok := products[id.String()]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s does not exist", id))
		}
	}
	return products, nil
}
