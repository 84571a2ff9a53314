package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	uc     *usecase.Service
	logger *zap.Logger
}

func New(uc *usecase.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{uc: uc, logger: logger}
}

// Routes builds the JSON API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.requestLogger)
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", h.handleSolve)
		r.Post("/count", h.handleCount)
		r.Post("/generate", h.handleGenerate)
		r.Post("/validate", h.handleValidate)
		r.Post("/hint", h.handleHint)
		r.Post("/save", h.handleSave)
		r.Get("/load", h.handleLoad)
		r.Get("/list", h.handleList)
		r.Get("/generate/stream", h.handleGenerateStream)
	})
	return r
}

// requestLogger logs method, path, status, bytes and duration per request.
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}

type errResp struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, code int, err error) {
	render.Status(r, code)
	render.JSON(w, r, errResp{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPuzzle),
		errors.Is(err, domain.ErrUnsolvable),
		errors.Is(err, domain.ErrMultipleSolutions):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ---- Solve ----

type gridReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	Nodes      int         `json:"nodes"`
	DurationMs int64       `json:"durationMs"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	solved, st, err := h.uc.Solve(r.Context(), req.Grid)
	if err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, solveResp{Grid: solved, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

// ---- Count ----

type countResp struct {
	Count      string `json:"count"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"durationMs"`
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	count, st, err := h.uc.CountSolutions(r.Context(), req.Grid)
	if err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, countResp{Count: count.String(), Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

// ---- Generate ----

type generateReq struct {
	Seed      int64 `json:"seed,omitempty"`
	FreeCells int   `json:"freeCells"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Nodes      int            `json:"nodes"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	p, st, err := h.uc.Generate(r.Context(), req.Seed, req.FreeCells)
	if err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, generateResp{Puzzle: p, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()})
}

// ---- Validate ----

type validateResp struct {
	Ok        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	ok, conflicts, err := h.uc.Validate(r.Context(), &req.Grid)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, validateResp{Ok: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req gridReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	hint, found, err := h.uc.Hint(r.Context(), &req.Grid)
	if err != nil {
		renderError(w, r, statusFor(err), err)
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hint})
}

// ---- Persistence ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}
	if err := h.uc.Save(r.Context(), &p); err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		renderError(w, r, http.StatusBadRequest, errors.New("missing id"))
		return
	}
	p, err := h.uc.Load(r.Context(), id)
	if err != nil {
		renderError(w, r, http.StatusNotFound, err)
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.uc.List(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	render.JSON(w, r, metas)
}
