package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/sets", h.handleSets)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/complete", h.handleComplete)
	mux.HandleFunc("/api/deal", h.handleDeal)
	mux.HandleFunc("/api/hint", h.handleHint)
}

// setCodes renders triples as card codes for the wire.
func setCodes(sets []domain.CardSet) [][]string {
	out := make([][]string, len(sets))
	for i, s := range sets {
		out[i] = s.Codes()
	}
	return out
}

// ---- Solve / Sets ----

type boardReq struct {
	Board []string `json:"board"`
}

type solveResp struct {
	Sets       [][]string `json:"sets,omitempty"`
	Group      [][]string `json:"group,omitempty"`
	Pairs      int        `json:"pairs,omitempty"`
	Rounds     int        `json:"rounds,omitempty"`
	DurationMs int64      `json:"durationMs,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := domain.ParseCodes(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	sol, st, err := h.UC.Solve(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Sets:       setCodes(sol.Sets),
		Group:      setCodes(sol.Group.Members),
		Pairs:      st.Pairs,
		Rounds:     st.Rounds,
		DurationMs: st.Duration.Milliseconds(),
	})
}

func (h *Handler) handleSets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := domain.ParseCodes(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	sets, st, err := h.UC.Sets(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Sets:       setCodes(sets),
		Pairs:      st.Pairs,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate / Complete ----

type cardsReq struct {
	Cards []string `json:"cards"`
}

type validateResp struct {
	Valid bool   `json:"valid"`
	Want  string `json:"want,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req cardsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Cards) != 3 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "want exactly 3 card codes"})
		return
	}
	cards, err := domain.ParseCodes(req.Cards)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, want, err := h.UC.Validate(r.Context(), cards[0], cards[1], cards[2])
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{Valid: ok, Want: want.Code()})
}

type completeResp struct {
	Card  string `json:"card,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req cardsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Cards) != 2 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(completeResp{Error: "want exactly 2 card codes"})
		return
	}
	cards, err := domain.ParseCodes(req.Cards)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(completeResp{Error: err.Error()})
		return
	}
	card, err := h.UC.Complete(r.Context(), cards[0], cards[1])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(completeResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(completeResp{Card: card.Code()})
}

// ---- Deal ----

type dealReq struct {
	Seed int64 `json:"seed,omitempty"`
	Size int   `json:"size,omitempty"`
}

type dealResp struct {
	Board      []string `json:"board,omitempty"`
	Seed       int64    `json:"seed,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func (h *Handler) handleDeal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req dealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dealResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := req.Size
	if size == 0 {
		size = 12
	}
	b, st, err := h.UC.Deal(r.Context(), seed, size)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dealResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(dealResp{Board: b.Codes(), Seed: seed, DurationMs: st.Duration.Milliseconds()})
}

// ---- Hint ----

type hintResp struct {
	Found bool     `json:"found"`
	Set   []string `json:"set,omitempty"`
	Error string   `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := domain.ParseCodes(req.Board)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	s, ok, err := h.UC.Hint(r.Context(), b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: ok}
	if ok {
		resp.Set = s.Codes()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
