// internal/app/system/txn/txn.go

// Package txn runs multi-document writes in a MongoDB transaction, with
// detection for deployments (standalone servers) that do not support them.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction starts a session on client and runs fn inside a
// transaction. The transaction commits when fn returns nil and aborts when
// fn returns an error. fn must use the session context it receives for
// every store call that should be part of the transaction.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) error) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Server error codes returned when transactions are unavailable.
// 20: IllegalOperation, 51: transaction numbers require a replica set,
// 263: OperationNotSupportedInTransaction.
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err indicates the server cannot run
// multi-document transactions (typically a standalone mongod). Callers fall
// back to sequential writes with compensation when this returns true.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) && notSupportedCodes[ce.Code] {
		return true
	}

	// Driver and proxy layers do not always preserve the code, so also
	// match the well-known message shapes.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "transaction") {
		if strings.Contains(msg, "replica set") ||
			strings.Contains(msg, "session") ||
			strings.Contains(msg, "illegal operation") {
			return true
		}
	}
	if strings.Contains(msg, "session") && strings.Contains(msg, "not supported") {
		return true
	}
	return false
}
