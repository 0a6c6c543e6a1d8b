package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs a list of named operations in order and, when one
// fails, runs the registered compensations for the already-executed
// ones in reverse. Used where a mutation spans more than one table and
// the store cannot give us a single-statement guarantee.
type Transaction struct {
	operations    []operation
	compensations []operation
}

type operation struct {
	name string
	fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, operation{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation %q failed: %w (rolled back %d operations)", op.name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	for i := failedAt - 1; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.fn(ctx); err != nil {
			log.Printf("[txn] compensation %q failed: %s (data may be inconsistent)", comp.name, err)
		}
	}
}
