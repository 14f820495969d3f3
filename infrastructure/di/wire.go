//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"synapse-backend/application/ports"
	"synapse-backend/application/services"
	"synapse-backend/infrastructure/config"
	"synapse-backend/pkg/auth"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	NodeRepo      ports.NodeRepository
	EdgeRepo      ports.EdgeRepository
	GraphRepo     ports.GraphRepository
	BatchWriter   ports.BatchWriter
	ScopeResolver *services.ScopeResolver
	NodeService   *services.NodeService
	EdgeService   *services.EdgeService
	GraphService  *services.GraphService
	JWTValidator  *auth.JWTValidator
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideNodeRepository,
	ProvideEdgeRepository,
	ProvideGraphRepository,
	ProvideBatchWriter,
	ProvideJWTValidator,
	ProvideScopeResolver,
	ProvideCascadeCoordinator,
	ProvideNodeService,
	ProvideEdgeService,
	ProvideGraphService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
