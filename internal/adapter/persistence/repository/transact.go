package repository

import (
	"context"
	"errors"
	"log"

	"cemiterio_api/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxTransactAttempts = 5

// errRetry marks a write lost to a concurrent writer; the caller re-reads
// and tries again.
var errRetry = errors.New("retry with fresh read")

func withRetry(ctx context.Context, op string, fn func() error) error {
	for attempt := 1; attempt <= maxTransactAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn()
		if !errors.Is(err, errRetry) {
			return err
		}
		log.Printf("[occupancy][dynamodb] %s conflict attempt=%d", op, attempt)
	}
	return entities.ErrConcurrentUpdate
}

// classifyCancellation maps a TransactWriteItems failure to a domain error.
// onConditionFailed[i] is returned when item i failed its condition; items
// without an entry, and transaction conflicts, yield errRetry.
func classifyCancellation(err error, onConditionFailed map[int]error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed":
			if mapped, ok := onConditionFailed[i]; ok {
				return mapped
			}
			return errRetry
		case "TransactionConflict":
			return errRetry
		}
	}
	return err
}
