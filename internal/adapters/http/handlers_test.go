package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

const (
	samplePuzzle   = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	sampleSolution = "534678912672195348198342567859761423426853791713924856961537284287419365345286179"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	counter := engine.NewCounter()
	svc := usecase.NewService(
		engine.NewSolver(),
		counter,
		generator.NewUniqueGenerator(counter),
		validator.New(),
		hint.New(),
		storage.NewFS(t.TempDir()),
	)
	srv := httptest.NewServer(New(svc, nil).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/solve", map[string]string{"grid": samplePuzzle})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Grid  string `json:"grid"`
		Nodes int    `json:"nodes"`
	}
	decodeInto(t, resp, &out)
	require.Equal(t, sampleSolution, strings.ReplaceAll(out.Grid, ".", "0"))
}

func TestSolveEndpointRejectsMalformed(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/solve", map[string]string{"grid": "bogus"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCountEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/count", map[string]string{"grid": strings.Repeat(".", 81)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Count string `json:"count"`
	}
	decodeInto(t, resp, &out)
	require.Equal(t, "multiple", out.Count)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/generate", map[string]any{"seed": 3, "freeCells": 40})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Puzzle domain.Puzzle `json:"puzzle"`
	}
	decodeInto(t, resp, &out)
	require.Equal(t, 40, out.Puzzle.FreeCells)
	require.Equal(t, 40, out.Puzzle.Grid.FreeCells())
}

func TestValidateAndHintEndpoints(t *testing.T) {
	srv := newTestServer(t)

	bad := "55" + samplePuzzle[2:]
	resp := postJSON(t, srv.URL+"/api/validate", map[string]string{"grid": bad})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var v struct {
		Ok        bool               `json:"ok"`
		Conflicts []domain.CellCoord `json:"conflicts"`
	}
	decodeInto(t, resp, &v)
	require.False(t, v.Ok)
	require.NotEmpty(t, v.Conflicts)

	nearly := "53." + sampleSolution[3:]
	resp = postJSON(t, srv.URL+"/api/hint", map[string]string{"grid": nearly})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var h struct {
		Found bool        `json:"found"`
		Hint  domain.Hint `json:"hint"`
	}
	decodeInto(t, resp, &h)
	require.True(t, h.Found)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 2}, h.Hint.Cell)
	require.Equal(t, uint8(4), h.Hint.Digit)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/save", map[string]any{"grid": samplePuzzle, "freeCells": 51})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved struct {
		ID string `json:"id"`
	}
	decodeInto(t, resp, &saved)
	require.NotEmpty(t, saved.ID)

	get, err := http.Get(srv.URL + "/api/load?id=" + saved.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, get.StatusCode)
	var p domain.Puzzle
	decodeInto(t, get, &p)
	require.Equal(t, saved.ID, p.ID)

	list, err := http.Get(srv.URL + "/api/list")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, list.StatusCode)
	var metas []domain.PuzzleMeta
	decodeInto(t, list, &metas)
	require.Len(t, metas, 1)
}

func TestGenerateStream(t *testing.T) {
	srv := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/generate/stream?count=2&freeCells=30&seed=5"

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		var msg struct {
			Index  int           `json:"index"`
			Puzzle domain.Puzzle `json:"puzzle"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, i, msg.Index)
		require.Equal(t, 30, msg.Puzzle.FreeCells)
	}
	_, _, err = conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
