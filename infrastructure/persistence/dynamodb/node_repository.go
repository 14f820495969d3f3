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

// nodeItem represents the DynamoDB item structure for a node
type nodeItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	NodeID     string `dynamodbav:"NodeID"`
	Title      string `dynamodbav:"Title"`
	Content    string `dynamodbav:"Content"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

// NodeRepository implements ports.NodeRepository using DynamoDB
type NodeRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewNodeRepository creates a new NodeRepository
func NewNodeRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.NodeRepository {
	return &NodeRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Create assigns a fresh ID and persists the node.
func (r *NodeRepository) Create(ctx context.Context, scope domain.Scope, node *domain.Node) (*domain.Node, error) {
	node.ID = uuid.New().String()

	av, err := attributevalue.MarshalMap(r.toItem(scope, node))
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("marshal node", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return nil, pkgerrors.NewDatabaseError("put node", err)
	}

	r.logger.Debug("node saved",
		zap.String("PK", scopePK(scope)),
		zap.String("nodeID", node.ID),
	)

	return node, nil
}

// FindByID retrieves a node by ID, or NotFound.
func (r *NodeRepository) FindByID(ctx context.Context, scope domain.Scope, nodeID string) (*domain.Node, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: scopePK(scope)},
			"SK": &types.AttributeValueMemberS{Value: nodeSK(nodeID)},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get node", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("node")
	}

	var item nodeItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal node", err)
	}

	return r.fromItem(item), nil
}

// FindByTitle runs an exact equality query on the title attribute.
func (r *NodeRepository) FindByTitle(ctx context.Context, scope domain.Scope, title string) ([]*domain.Node, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(scopePK(scope))).
		And(expression.Key("SK").BeginsWith("NODE#"))
	filter := expression.Name("Title").Equal(expression.Value(title))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(filter).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build title query", err)
	}

	return r.queryNodes(ctx, expr)
}

// FindByScope retrieves every node in the scope.
func (r *NodeRepository) FindByScope(ctx context.Context, scope domain.Scope) ([]*domain.Node, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(scopePK(scope))).
		And(expression.Key("SK").BeginsWith("NODE#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build scope query", err)
	}

	return r.queryNodes(ctx, expr)
}

// Update overwrites an existing node document.
func (r *NodeRepository) Update(ctx context.Context, scope domain.Scope, node *domain.Node) error {
	av, err := attributevalue.MarshalMap(r.toItem(scope, node))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal node", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return pkgerrors.NewDatabaseError("update node", err)
	}

	return nil
}

func (r *NodeRepository) queryNodes(ctx context.Context, expr expression.Expression) ([]*domain.Node, error) {
	var nodes []*domain.Node
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
			return nil, pkgerrors.NewDatabaseError("query nodes", err)
		}

		for _, raw := range result.Items {
			var item nodeItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("skipping malformed node item", zap.Error(err))
				continue
			}
			nodes = append(nodes, r.fromItem(item))
		}

		lastEvaluatedKey = result.LastEvaluatedKey
		if lastEvaluatedKey == nil {
			break
		}
	}

	return nodes, nil
}

func (r *NodeRepository) toItem(scope domain.Scope, node *domain.Node) nodeItem {
	return nodeItem{
		PK:         scopePK(scope),
		SK:         nodeSK(node.ID),
		EntityType: "NODE",
		NodeID:     node.ID,
		Title:      node.Title,
		Content:    node.Content,
		CreatedAt:  node.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  node.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *NodeRepository) fromItem(item nodeItem) *domain.Node {
	createdAt, _ := utils.ParseRFC3339(item.CreatedAt)
	updatedAt, _ := utils.ParseRFC3339(item.UpdatedAt)
	return &domain.Node{
		ID:        item.NodeID,
		Title:     item.Title,
		Content:   item.Content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
