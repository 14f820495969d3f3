package dynamodb

import (
	"context"
	"time"

	"synapse-backend/application/ports"
	"synapse-backend/domain"
	pkgerrors "synapse-backend/pkg/errors"
	"synapse-backend/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// edgeItem represents the DynamoDB item structure for an edge
type edgeItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	EdgeID     string `dynamodbav:"EdgeID"`
	SourceID   string `dynamodbav:"SourceID"`
	TargetID   string `dynamodbav:"TargetID"`
	Label      string `dynamodbav:"Label"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

// EdgeRepository implements ports.EdgeRepository using DynamoDB
type EdgeRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewEdgeRepository creates a new EdgeRepository
func NewEdgeRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.EdgeRepository {
	return &EdgeRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Create assigns a fresh ID and persists the edge.
func (r *EdgeRepository) Create(ctx context.Context, scope domain.Scope, edge *domain.Edge) (*domain.Edge, error) {
	edge.ID = uuid.New().String()

	av, err := attributevalue.MarshalMap(r.toItem(scope, edge))
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("marshal edge", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return nil, pkgerrors.NewDatabaseError("put edge", err)
	}

	r.logger.Debug("edge saved",
		zap.String("PK", scopePK(scope)),
		zap.String("edgeID", edge.ID),
	)

	return edge, nil
}

// FindByID retrieves an edge by ID, or NotFound.
func (r *EdgeRepository) FindByID(ctx context.Context, scope domain.Scope, edgeID string) (*domain.Edge, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: scopePK(scope)},
			"SK": &types.AttributeValueMemberS{Value: edgeSK(edgeID)},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get edge", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("edge")
	}

	var item edgeItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal edge", err)
	}

	return r.fromItem(item), nil
}

// FindBySource retrieves edges whose source is the given node.
func (r *EdgeRepository) FindBySource(ctx context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error) {
	return r.queryByAttribute(ctx, scope, "SourceID", nodeID)
}

// FindByTarget retrieves edges whose target is the given node.
func (r *EdgeRepository) FindByTarget(ctx context.Context, scope domain.Scope, nodeID string) ([]*domain.Edge, error) {
	return r.queryByAttribute(ctx, scope, "TargetID", nodeID)
}

// FindByScope retrieves every edge in the scope.
func (r *EdgeRepository) FindByScope(ctx context.Context, scope domain.Scope) ([]*domain.Edge, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(scopePK(scope))).
		And(expression.Key("SK").BeginsWith("EDGE#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build scope query", err)
	}

	return r.queryEdges(ctx, expr)
}

// Update overwrites an existing edge document.
func (r *EdgeRepository) Update(ctx context.Context, scope domain.Scope, edge *domain.Edge) error {
	av, err := attributevalue.MarshalMap(r.toItem(scope, edge))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal edge", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return pkgerrors.NewDatabaseError("update edge", err)
	}

	return nil
}

// Delete removes a single edge document.
func (r *EdgeRepository) Delete(ctx context.Context, scope domain.Scope, edgeID string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: scopePK(scope)},
			"SK": &types.AttributeValueMemberS{Value: edgeSK(edgeID)},
		},
	}); err != nil {
		return pkgerrors.NewDatabaseError("delete edge", err)
	}

	return nil
}

func (r *EdgeRepository) queryByAttribute(ctx context.Context, scope domain.Scope, attr, nodeID string) ([]*domain.Edge, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(scopePK(scope))).
		And(expression.Key("SK").BeginsWith("EDGE#"))
	filter := expression.Name(attr).Equal(expression.Value(nodeID))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build edge query", err)
	}

	return r.queryEdges(ctx, expr)
}

func (r *EdgeRepository) queryEdges(ctx context.Context, expr expression.Expression) ([]*domain.Edge, error) {
	var edges []*domain.Edge
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		result, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastEvaluatedKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("query edges", err)
		}

		for _, raw := range result.Items {
			var item edgeItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("skipping malformed edge item", zap.Error(err))
				continue
			}
			edges = append(edges, r.fromItem(item))
		}

		lastEvaluatedKey = result.LastEvaluatedKey
		if lastEvaluatedKey == nil {
			break
		}
	}

	return edges, nil
}

func (r *EdgeRepository) toItem(scope domain.Scope, edge *domain.Edge) edgeItem {
	return edgeItem{
		PK:         scopePK(scope),
		SK:         edgeSK(edge.ID),
		EntityType: "EDGE",
		EdgeID:     edge.ID,
		SourceID:   edge.SourceID,
		TargetID:   edge.TargetID,
		Label:      edge.Label,
		CreatedAt:  edge.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  edge.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *EdgeRepository) fromItem(item edgeItem) *domain.Edge {
	createdAt, _ := utils.ParseRFC3339(item.CreatedAt)
	updatedAt, _ := utils.ParseRFC3339(item.UpdatedAt)
	return &domain.Edge{
		ID:        item.EdgeID,
		SourceID:  item.SourceID,
		TargetID:  item.TargetID,
		Label:     item.Label,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
