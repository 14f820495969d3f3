package di

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/application/services"
	"synapse-backend/infrastructure/config"
	"synapse-backend/infrastructure/persistence/dynamodb"
	"synapse-backend/pkg/auth"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideNodeRepository creates a node repository
func ProvideNodeRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.NodeRepository {
	return dynamodb.NewNodeRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEdgeRepository creates an edge repository
func ProvideEdgeRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.EdgeRepository {
	return dynamodb.NewEdgeRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideGraphRepository creates a graph repository
func ProvideGraphRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.GraphRepository {
	return dynamodb.NewGraphRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideBatchWriter creates the transactional batch writer
func ProvideBatchWriter(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.BatchWriter {
	return dynamodb.NewBatchWriter(client, cfg.DynamoDBTable, logger)
}

// ProvideJWTValidator creates the credential validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret-change-in-production"
	}

	jwtCfg := auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	}
	if cfg.JWTAudience != "" {
		jwtCfg.Audience = []string{cfg.JWTAudience}
	}

	return auth.NewJWTValidator(jwtCfg)
}

// ProvideScopeResolver creates the scope resolver
func ProvideScopeResolver(graphs ports.GraphRepository, logger *zap.Logger) *services.ScopeResolver {
	return services.NewScopeResolver(graphs, logger)
}

// ProvideCascadeCoordinator creates the cascade coordinator
func ProvideCascadeCoordinator(
	nodes ports.NodeRepository,
	edges ports.EdgeRepository,
	graphs ports.GraphRepository,
	batch ports.BatchWriter,
	logger *zap.Logger,
) *services.CascadeCoordinator {
	return services.NewCascadeCoordinator(nodes, edges, graphs, batch, logger)
}

// ProvideNodeService creates the node service
func ProvideNodeService(
	nodes ports.NodeRepository,
	edges ports.EdgeRepository,
	cascade *services.CascadeCoordinator,
	logger *zap.Logger,
) *services.NodeService {
	return services.NewNodeService(nodes, edges, cascade, logger)
}

// ProvideEdgeService creates the edge service
func ProvideEdgeService(edges ports.EdgeRepository, nodes ports.NodeRepository, logger *zap.Logger) *services.EdgeService {
	return services.NewEdgeService(edges, nodes, logger)
}

// ProvideGraphService creates the graph service
func ProvideGraphService(graphs ports.GraphRepository, cascade *services.CascadeCoordinator, logger *zap.Logger) *services.GraphService {
	return services.NewGraphService(graphs, cascade, logger)
}
