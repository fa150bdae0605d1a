package storage

import (
	"context"
)

// Tx is the transaction behind a Writer.
//
//go:generate mockery --name Tx --output mock_Tx.go
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open transaction.
type Writer struct {
	Tables
	tx Tx
}

func NewWriter(tx Tx, tables Tables) *Writer {
	return &Writer{
		Tables: tables,
		tx:     tx,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
