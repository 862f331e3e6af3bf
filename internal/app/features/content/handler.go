package content

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	contentstore "github.com/caprecon/backend/internal/app/store/content"
	"github.com/caprecon/backend/internal/app/system/httpjson"
	"github.com/caprecon/backend/internal/app/system/inputval"
	"github.com/caprecon/backend/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Default limits match the original site's card layouts: 20 program cards,
// 12 story/post cards.
const (
	defaultProgramLimit = 20
	defaultStoryLimit   = 12
	defaultPostLimit    = 12

	// maxLimit caps what a public caller can request in one read.
	maxLimit = 100
)

// Handler serves the published-content list endpoints.
type Handler struct {
	Store *contentstore.Store
	Log   *zap.Logger
}

func NewHandler(store *contentstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}

// ListPrograms handles GET /api/programs?limit=20&published_only=true.
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, defaultProgramLimit, h.Store.ListPrograms)
}

// ListStories handles GET /api/stories?limit=12&published_only=true.
func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, defaultStoryLimit, h.Store.ListStories)
}

// ListPosts handles GET /api/posts?limit=12&published_only=true.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	serveList(h, w, r, defaultPostLimit, h.Store.ListPosts)
}

func serveList[T any](h *Handler, w http.ResponseWriter, r *http.Request, defLimit int64, fetch func(context.Context, bool, int64) ([]T, error)) {
	limit := parseLimit(query.Get(r, "limit"), defLimit)
	publishedOnly := parseBool(query.Get(r, "published_only"), true)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := fetch(ctx, publishedOnly, limit)
	if err != nil {
		if errors.Is(err, contentstore.ErrUnavailable) {
			httpjson.Error(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
		h.Log.Error("content list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, httpjson.Truncate(err.Error(), 200))
		return
	}

	// docs is always non-nil: an empty collection serializes as [].
	httpjson.Write(w, http.StatusOK, docs)
}

func parseLimit(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return inputval.ClampLimit(n, def, maxLimit)
}

func parseBool(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}
