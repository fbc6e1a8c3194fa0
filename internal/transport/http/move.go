package http

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
	"github.com/iamasit07/4-in-a-row/brain/internal/service/brain"
	"github.com/rs/zerolog/log"
)

type MoveHandler struct {
	DefaultDepth int
	Win          brain.WinPredicate
}

func NewMoveHandler(defaultDepth int, win brain.WinPredicate) *MoveHandler {
	return &MoveHandler{DefaultDepth: defaultDepth, Win: win}
}

type moveRequest struct {
	Board  *domain.Board `json:"board"`
	Mark   int           `json:"mark"`
	Player int           `json:"player"`
	Depth  *int          `json:"depth"`
}

type moveResponse struct {
	Column int        `json:"column"`
	Found  bool       `json:"found"`
	Tier   string     `json:"tier"`
	Scores []*float64 `json:"scores,omitempty"` // infinite scores are sent as null
}

// Move returns the column the engine would play, or found=false.
func (h *MoveHandler) Move(c *gin.Context) {
	analysis, ok := h.analyze(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, moveResponse{
		Column: analysis.Column,
		Found:  analysis.Found(),
		Tier:   analysis.Tier.String(),
	})
}

// Analyze is Move plus the hard tier's score vector.
func (h *MoveHandler) Analyze(c *gin.Context) {
	analysis, ok := h.analyze(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, moveResponse{
		Column: analysis.Column,
		Found:  analysis.Found(),
		Tier:   analysis.Tier.String(),
		Scores: finiteScores(analysis.Scores),
	})
}

func (h *MoveHandler) analyze(c *gin.Context) (*brain.Analysis, bool) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if req.Board == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board is required"})
		return nil, false
	}

	mark, err := domain.ResolveMark(req.Mark, req.Player)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mark must be 1 or -1"})
		return nil, false
	}

	depth := h.DefaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	analysis, err := brain.Analyze(depth, req.Board, mark, h.Win)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		log.Error().Err(err).Msg("[HTTP] move search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "move search failed"})
		return nil, false
	}

	return analysis, true
}

func finiteScores(scores []float64) []*float64 {
	if scores == nil {
		return nil
	}
	out := make([]*float64, len(scores))
	for i := range scores {
		if !math.IsInf(scores[i], 0) && !math.IsNaN(scores[i]) {
			out[i] = &scores[i]
		}
	}
	return out
}
