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

// graphItem represents the DynamoDB item structure for a graph
type graphItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	GraphID    string `dynamodbav:"GraphID"`
	Name       string `dynamodbav:"Name"`
	IsDefault  bool   `dynamodbav:"IsDefault"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

// GraphRepository implements ports.GraphRepository using DynamoDB
type GraphRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewGraphRepository creates a new GraphRepository
func NewGraphRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.GraphRepository {
	return &GraphRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Create assigns a fresh ID and persists the graph record.
func (r *GraphRepository) Create(ctx context.Context, userID string, graph *domain.Graph) (*domain.Graph, error) {
	graph.ID = uuid.New().String()

	av, err := attributevalue.MarshalMap(r.toItem(userID, graph))
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("marshal graph", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return nil, pkgerrors.NewDatabaseError("put graph", err)
	}

	r.logger.Debug("graph saved",
		zap.String("PK", userPK(userID)),
		zap.String("graphID", graph.ID),
	)

	return graph, nil
}

// FindByID retrieves a graph owned by the user, or NotFound.
func (r *GraphRepository) FindByID(ctx context.Context, userID, graphID string) (*domain.Graph, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: graphSK(graphID)},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get graph", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("graph")
	}

	var item graphItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewDatabaseError("unmarshal graph", err)
	}

	return r.fromItem(item), nil
}

// FindByName runs an exact equality query on the name attribute.
func (r *GraphRepository) FindByName(ctx context.Context, userID, name string) ([]*domain.Graph, error) {
	filter := expression.Name("Name").Equal(expression.Value(name))
	return r.queryGraphs(ctx, userID, &filter)
}

// FindByUser retrieves every graph owned by the user.
func (r *GraphRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Graph, error) {
	return r.queryGraphs(ctx, userID, nil)
}

// FindDefault retrieves the user's default graph, or NotFound.
func (r *GraphRepository) FindDefault(ctx context.Context, userID string) (*domain.Graph, error) {
	filter := expression.Name("IsDefault").Equal(expression.Value(true))
	graphs, err := r.queryGraphs(ctx, userID, &filter)
	if err != nil {
		return nil, err
	}
	if len(graphs) == 0 {
		return nil, pkgerrors.NewNotFoundError("default graph")
	}
	return graphs[0], nil
}

// Update overwrites an existing graph record.
func (r *GraphRepository) Update(ctx context.Context, userID string, graph *domain.Graph) error {
	av, err := attributevalue.MarshalMap(r.toItem(userID, graph))
	if err != nil {
		return pkgerrors.NewDatabaseError("marshal graph", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return pkgerrors.NewDatabaseError("update graph", err)
	}

	return nil
}

func (r *GraphRepository) queryGraphs(ctx context.Context, userID string, filter *expression.ConditionBuilder) ([]*domain.Graph, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(userPK(userID))).
		And(expression.Key("SK").BeginsWith("GRAPH#"))

	builder := expression.NewBuilder().WithKeyCondition(keyCond)
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("build graph query", err)
	}

	var graphs []*domain.Graph
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
			return nil, pkgerrors.NewDatabaseError("query graphs", err)
		}

		for _, raw := range result.Items {
			var item graphItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("skipping malformed graph item", zap.Error(err))
				continue
			}
			graphs = append(graphs, r.fromItem(item))
		}

		lastEvaluatedKey = result.LastEvaluatedKey
		if lastEvaluatedKey == nil {
			break
		}
	}

	return graphs, nil
}

func (r *GraphRepository) toItem(userID string, graph *domain.Graph) graphItem {
	return graphItem{
		PK:         userPK(userID),
		SK:         graphSK(graph.ID),
		EntityType: "GRAPH",
		GraphID:    graph.ID,
		Name:       graph.Name,
		IsDefault:  graph.IsDefault,
		CreatedAt:  graph.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  graph.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *GraphRepository) fromItem(item graphItem) *domain.Graph {
	createdAt, _ := utils.ParseRFC3339(item.CreatedAt)
	updatedAt, _ := utils.ParseRFC3339(item.UpdatedAt)
	return &domain.Graph{
		ID:        item.GraphID,
		Name:      item.Name,
		IsDefault: item.IsDefault,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
