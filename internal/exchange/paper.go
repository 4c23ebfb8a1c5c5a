package exchange

import (
	"context"
	"fmt"
	"sync"

	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// PaperExecutor accepts every well-formed order without touching an
// exchange. It backs dry runs and replay drivers.
type PaperExecutor struct {
	mu        sync.Mutex
	nextID    int64
	submitted []types.Order
}

// NewPaperExecutor creates an executor that fills orders on paper.
func NewPaperExecutor() *PaperExecutor {
	return &PaperExecutor{nextID: 1}
}

// SubmitOrder validates the order and assigns a synthetic exchange order id.
func (e *PaperExecutor) SubmitOrder(ctx context.Context, order types.Order) (string, error) {
	if quantity, _ := order.Quantity.Float64(); quantity <= 0 {
		return "", errors.New(errors.ErrCodeInvalidParameter, "order quantity must be greater than zero")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := fmt.Sprintf("paper-%d", e.nextID)
	e.nextID++
	e.submitted = append(e.submitted, order)

	return id, nil
}

// SubmittedOrders returns a copy of every order submitted so far.
func (e *PaperExecutor) SubmittedOrders() []types.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	orders := make([]types.Order, len(e.submitted))
	copy(orders, e.submitted)

	return orders
}
