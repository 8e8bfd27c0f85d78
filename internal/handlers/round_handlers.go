package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/grants-insight/api"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/report"
	"github.com/thirdweb-dev/grants-insight/internal/source"
)

var now = time.Now

type RoundModel struct {
	common.Round
	BaselineBlock *uint64 `json:"baseline_block,omitempty"`
}

type RoundDetailModel struct {
	Round    common.Round          `json:"round"`
	Summary  report.RoundDetail    `json:"summary"`
	Treemap  []report.TreemapEntry `json:"treemap"`
	Projects []report.ProjectRow   `json:"projects"`
}

// @Summary Get configured rounds
// @Description List the rounds of the configured program with the baseline block of their chain
// @Tags rounds
// @Accept json
// @Produce json
// @Security BasicAuth
// @Success 200 {object} api.QueryResponse{data=[]RoundModel}
// @Failure 401 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /rounds [get]
func GetRounds(c *gin.Context) {
	session, err := getSession()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	rounds := make([]RoundModel, 0, len(session.Rounds))
	for _, r := range session.Rounds {
		round := RoundModel{Round: r}
		// a chain without votes has no baseline
		if baseline, ok := session.ChainStartingBlocks[r.ChainId]; ok {
			round.BaselineBlock = &baseline
		}
		rounds = append(rounds, round)
	}

	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, api.QueryParams{Limit: len(rounds)}, len(rounds), 1),
		Data:     rounds,
		Warnings: session.Warnings,
	})
}

// @Summary Get round details
// @Description Totals, treemap and formatted project table for a single round
// @Tags rounds
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chainId path string true "Chain ID"
// @Param roundId path string true "Round ID"
// @Success 200 {object} api.QueryResponse{data=RoundDetailModel}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /rounds/{chainId}/{roundId} [get]
func GetRoundDetail(c *gin.Context) {
	chainId, err := api.GetChainId(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	roundId := c.Param("roundId")

	session, err := getSession()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	sel := selectRows(session, chainId, roundId)
	if len(sel.Rounds) == 0 {
		api.NotFoundErrorHandler(c, ErrRoundAbsent)
		return
	}

	detail := RoundDetailModel{
		Round:    sel.Rounds[0],
		Summary:  report.SummarizeRound(sel.Rounds, sel.Projects, sel.Votes),
		Treemap:  report.ProjectTreemap(sel.Projects),
		Projects: report.ProjectTable(sel.Projects),
	}

	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, api.QueryParams{ChainId: chainId, RoundId: roundId, Limit: 1}, 1, 1),
		Data:     detail,
		Warnings: sel.Warnings,
	})
}

// @Summary Get live rounds
// @Description Rounds on a chain that are open now and have received votes, most voted first
// @Tags rounds
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chainId path string true "Chain ID"
// @Success 200 {object} api.QueryResponse{data=[]common.ChainRound}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /chains/{chainId}/rounds/live [get]
func GetLiveRounds(c *gin.Context) {
	chainId, err := api.GetChainId(c)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	src, err := getSource()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	rounds, err := src.GetChainRounds(c.Request.Context(), chainId)
	if err != nil {
		var fetchErr *source.FetchError
		if errors.As(err, &fetchErr) {
			log.Warn().Err(err).Uint64("chain_id", chainId).Msg("Error fetching chain rounds")
			api.ServiceUnavailableErrorHandler(c, err)
			return
		}
		log.Error().Err(err).Uint64("chain_id", chainId).Msg("Error reading chain rounds")
		api.InternalErrorHandler(c)
		return
	}

	live := report.LiveRounds(rounds, now())
	meta := api.Meta{
		ChainId:    &chainId,
		Limit:      len(live),
		TotalItems: len(live),
		TotalPages: 1,
	}
	sendJSONResponse(c, api.QueryResponse{Meta: meta, Data: live})
}
