package home

import (
	"net/http"

	"github.com/caprecon/backend/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler serves the liveness messages the marketing site pings.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Caprecon Backend Running"})
}

// ServeHello handles GET /api/hello.
func (h *Handler) ServeHello(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Hello from Caprecon API"})
}
