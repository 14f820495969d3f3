package rest

import (
	"net/http"

	"synapse-backend/application/services"
	"synapse-backend/interfaces/http/rest/handlers"
	"synapse-backend/interfaces/http/rest/middleware"
	"synapse-backend/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	nodes     *services.NodeService
	edges     *services.EdgeService
	graphs    *services.GraphService
	resolver  *services.ScopeResolver
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	nodes *services.NodeService,
	edges *services.EdgeService,
	graphs *services.GraphService,
	resolver *services.ScopeResolver,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		nodes:     nodes,
		edges:     edges,
		graphs:    graphs,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}

// Setup configures all routes and middleware. Node and edge routes exist in
// two forms: un-nested under /api, resolving to the user's default graph,
// and nested under /api/graphs/{graphID} for an explicit graph.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*.synapse.app"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", rt.healthCheck)

	nodeHandler := handlers.NewNodeHandler(rt.nodes, rt.resolver, rt.logger)
	edgeHandler := handlers.NewEdgeHandler(rt.edges, rt.resolver, rt.logger)
	graphHandler := handlers.NewGraphHandler(rt.graphs, rt.logger)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		// Default-graph routes
		r.Route("/nodes", func(r chi.Router) {
			rt.nodeRoutes(r, nodeHandler, edgeHandler)
		})
		r.Route("/edges", func(r chi.Router) {
			rt.edgeRoutes(r, edgeHandler)
		})

		// Graph containers plus explicit-graph routes
		r.Route("/graphs", func(r chi.Router) {
			r.Get("/", graphHandler.ListGraphs)
			r.Post("/", graphHandler.CreateGraph)

			r.Route("/{graphID}", func(r chi.Router) {
				r.Get("/", graphHandler.GetGraph)
				r.Patch("/", graphHandler.RenameGraph)
				r.Delete("/", graphHandler.DeleteGraph)

				r.Route("/nodes", func(r chi.Router) {
					rt.nodeRoutes(r, nodeHandler, edgeHandler)
				})
				r.Route("/edges", func(r chi.Router) {
					rt.edgeRoutes(r, edgeHandler)
				})
			})
		})
	})

	return router
}

func (rt *Router) nodeRoutes(r chi.Router, nodeHandler *handlers.NodeHandler, edgeHandler *handlers.EdgeHandler) {
	r.Get("/", nodeHandler.ListNodes)
	r.Post("/", nodeHandler.CreateNode)
	r.Get("/{nodeID}", nodeHandler.GetNode)
	r.Patch("/{nodeID}", nodeHandler.UpdateNode)
	r.Delete("/{nodeID}", nodeHandler.DeleteNode)
	r.Get("/{nodeID}/edges", edgeHandler.ListNodeEdges)
}

func (rt *Router) edgeRoutes(r chi.Router, edgeHandler *handlers.EdgeHandler) {
	r.Post("/", edgeHandler.CreateEdge)
	r.Patch("/{edgeID}", edgeHandler.UpdateEdge)
	r.Delete("/{edgeID}", edgeHandler.DeleteEdge)
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
