package service

import (
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/metrics"
)

// reportGap records a partially completed back-reference sequence. Nothing
// repairs the gap; the log line and counter exist so reconciliation can find
// it later.
func reportGap(entity, op string, productID, childID primitive.ObjectID, err error) {
	metrics.ConsistencyGaps.WithLabelValues(entity, op).Inc()

	event := log.Error()
	if err == nil {
		event = log.Warn()
	} else {
		event = event.Err(err)
	}
	event.
		Str("entity", entity).
		Str("op", op).
		Str("productId", productID.Hex())
	if !childID.IsZero() {
		event = event.Str("childId", childID.Hex())
	}
	event.Msg("back-reference maintenance left a consistency gap")
}
