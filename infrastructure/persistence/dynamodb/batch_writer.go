package dynamodb

import (
	"context"
	"fmt"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TransactWriteItems rejects transactions above this size; a cascade that
// would exceed it is refused outright rather than split, because splitting
// would give up all-or-nothing semantics.
const maxTransactItems = 100

// BatchWriter implements ports.BatchWriter using DynamoDB transactions.
// Every commit is a single TransactWriteItems call: the store applies every
// delete or none of them.
type BatchWriter struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewBatchWriter creates a new BatchWriter
func NewBatchWriter(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.BatchWriter {
	return &BatchWriter{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// DeleteNodeWithEdges removes a node document and every listed edge document
// as one transaction.
func (w *BatchWriter) DeleteNodeWithEdges(ctx context.Context, scope domain.Scope, nodeID string, edgeIDs []string) error {
	items := make([]types.TransactWriteItem, 0, len(edgeIDs)+1)
	items = append(items, w.deleteItem(scopePK(scope), nodeSK(nodeID)))
	for _, edgeID := range edgeIDs {
		items = append(items, w.deleteItem(scopePK(scope), edgeSK(edgeID)))
	}

	return w.commit(ctx, items)
}

// DeleteGraph removes the graph record plus every owned node and edge as
// one transaction.
func (w *BatchWriter) DeleteGraph(ctx context.Context, userID, graphID string, nodeIDs, edgeIDs []string) error {
	scope := domain.NewScope(userID, graphID)

	items := make([]types.TransactWriteItem, 0, len(nodeIDs)+len(edgeIDs)+1)
	items = append(items, w.deleteItem(userPK(userID), graphSK(graphID)))
	for _, nodeID := range nodeIDs {
		items = append(items, w.deleteItem(scopePK(scope), nodeSK(nodeID)))
	}
	for _, edgeID := range edgeIDs {
		items = append(items, w.deleteItem(scopePK(scope), edgeSK(edgeID)))
	}

	return w.commit(ctx, items)
}

func (w *BatchWriter) commit(ctx context.Context, items []types.TransactWriteItem) error {
	if len(items) > maxTransactItems {
		return pkgerrors.NewDatabaseError("batch delete",
			fmt.Errorf("cascade of %d documents exceeds the %d-item transaction limit", len(items), maxTransactItems))
	}

	if _, err := w.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	}); err != nil {
		return pkgerrors.NewDatabaseError("batch delete", err)
	}

	w.logger.Debug("batch delete committed", zap.Int("documents", len(items)))

	return nil
}

func (w *BatchWriter) deleteItem(pk, sk string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(w.tableName),
			Key: map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: pk},
				"SK": &types.AttributeValueMemberS{Value: sk},
			},
		},
	}
}
