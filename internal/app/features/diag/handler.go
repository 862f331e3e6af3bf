package diag

import (
	"context"
	"net/http"

	"github.com/caprecon/backend/internal/app/system/httpjson"
	"github.com/caprecon/backend/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// maxCollections bounds the collection listing in the report.
const maxCollections = 20

// Handler serves the store diagnostics endpoint. Every probe failure is
// folded into the report fields; the endpoint itself never fails.
type Handler struct {
	Client   *mongo.Client
	DB       *mongo.Database
	MongoURI string
	Log      *zap.Logger
}

// NewHandler constructs a diag Handler. Client and DB are nil when the
// process started without a reachable store.
func NewHandler(client *mongo.Client, db *mongo.Database, mongoURI string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		DB:       db,
		MongoURI: mongoURI,
		Log:      logger,
	}
}

// diagResponse is the JSON structure for the diagnostics report.
type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Serve handles GET /test. Always 200; the report describes how far the
// store probe got.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := diagResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.MongoURI != "" {
		resp.DatabaseURL = "set"
	}

	if h.Client == nil || h.DB == nil {
		httpjson.Write(w, http.StatusOK, resp)
		return
	}

	resp.Database = "available"
	resp.DatabaseName = h.DB.Name()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("diag: mongo ping failed", zap.Error(err))
		resp.Database = "error: " + httpjson.Truncate(err.Error(), 120)
		httpjson.Write(w, http.StatusOK, resp)
		return
	}

	resp.ConnectionStatus = "connected"

	names, err := h.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.Log.Warn("diag: list collections failed", zap.Error(err))
		resp.Database = "connected but error: " + httpjson.Truncate(err.Error(), 80)
		httpjson.Write(w, http.StatusOK, resp)
		return
	}

	if len(names) > maxCollections {
		names = names[:maxCollections]
	}
	resp.Collections = names
	resp.Database = "connected"

	httpjson.Write(w, http.StatusOK, resp)
}
