package engine

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Server wires the routes onto the engine's handlers.
type Server struct {
	engine         *Engine
	router         *mux.Router
	handler        http.Handler
	catalogHandler *CatalogHandlers
	modelHandler   *ModelHandlers
	middleware     *Middleware
}

// NewServer builds the router with all routes and middleware attached.
func NewServer(engine *Engine) *Server {
	s := &Server{
		engine:         engine,
		router:         mux.NewRouter(),
		catalogHandler: NewCatalogHandlers(engine),
		modelHandler:   NewModelHandlers(engine),
		middleware:     NewMiddleware(engine),
	}
	s.setupRoutes()
	// The middleware wraps the whole router so CORS preflights and logging
	// also cover unmatched routes.
	s.handler = s.middleware.CORS(s.middleware.RequestLogging(s.router))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	s.router.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.engine.metrics.Handler()).Methods(http.MethodGet)

	connect := s.router.PathPrefix("/connect").Subrouter()
	connect.HandleFunc("/types", s.catalogHandler.ListTypes).Methods(http.MethodGet)
	connect.HandleFunc("/streams", s.catalogHandler.ListStreams).Methods(http.MethodGet)
	connect.HandleFunc("/assets", s.catalogHandler.ListAssets).Methods(http.MethodGet)
	connect.HandleFunc("/asset_types", s.catalogHandler.ListAssetTypes).Methods(http.MethodGet)

	connect.HandleFunc("/models", s.modelHandler.ListModels).Methods(http.MethodGet)
	connect.HandleFunc("/models", s.modelHandler.CreateModel).Methods(http.MethodPost)
	connect.HandleFunc("/models", s.modelHandler.DeleteModel).Methods(http.MethodDelete)

	connect.HandleFunc("/stream_values", s.catalogHandler.GetStreamValues).Methods(http.MethodGet)
	connect.HandleFunc("/stream_sample_values", s.catalogHandler.GetStreamSampleValues).Methods(http.MethodGet)
	connect.HandleFunc("/asset_values", s.catalogHandler.GetAssetValues).Methods(http.MethodGet)
	connect.HandleFunc("/model_values", s.modelHandler.GetModelValues).Methods(http.MethodGet)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.engine.writeJSONResponse(w, http.StatusOK, MessageResponse{Message: "forecast gateway"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.engine.checker.RunCheck("store", s.engine.CheckStore)

	resp := HealthResponse{Status: string(s.engine.checker.GetOverallStatus())}
	for _, check := range s.engine.checker.GetAllChecks() {
		resp.Checks = append(resp.Checks, HealthCheck{
			Name:    check.Name,
			Status:  string(check.Status),
			Message: check.Message,
		})
	}

	code := http.StatusOK
	if resp.Status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	s.engine.writeJSONResponse(w, code, resp)
}
