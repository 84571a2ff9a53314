package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"svw.info/sudoku-engine/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type streamMsg struct {
	Index      int            `json:"index"`
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Nodes      int            `json:"nodes"`
	DurationMs int64          `json:"durationMs"`
}

// handleGenerateStream pushes each generated puzzle over a websocket as soon
// as it is produced, so bulk consumers see progress instead of one big
// response. Query parameters: count, freeCells, seed.
func (h *Handler) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	count := queryInt(r, "count", 1)
	freeCells := queryInt(r, "freeCells", 45)
	seed := queryInt64(r, "seed", time.Now().UnixNano())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for i := 0; i < count; i++ {
		p, st, err := h.uc.Generate(ctx, seed+int64(i), freeCells)
		if err != nil {
			_ = conn.WriteJSON(errResp{Error: err.Error()})
			return
		}
		msg := streamMsg{Index: i, Puzzle: p, Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("stream consumer gone", zap.Error(err))
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func queryInt(r *http.Request, key string, fallback int) int {
	if s := r.URL.Query().Get(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	if s := r.URL.Query().Get(key); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
