package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/grants-insight/api"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/report"
)

type SummaryModel struct {
	Overview             report.Overview      `json:"overview"`
	DonationsByToken     []report.TokenAmount `json:"donations_by_token"`
	DonatedByRound       []report.RoundAmount `json:"donated_by_round"`
	ContributionsByRound []report.RoundCount  `json:"contributions_by_round"`
}

// @Summary Get program summary
// @Description Overview totals, donations by token and per-round amounts for the configured program
// @Tags summary
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chain_id query int false "Restrict to a chain"
// @Param round_id query string false "Restrict to a round"
// @Success 200 {object} api.QueryResponse{data=SummaryModel}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /summary [get]
func GetSummary(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	session, err := getSession()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	sel := selectRows(session, queryParams.ChainId, queryParams.RoundId)
	summary := SummaryModel{
		Overview:             report.SummarizeOverview(sel.Rounds, sel.Projects, sel.Votes),
		DonationsByToken:     report.DonationsByToken(sel.Votes),
		DonatedByRound:       report.DonatedByRound(sel.Projects),
		ContributionsByRound: report.ContributionsByRound(sel.Projects),
	}

	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, queryParams, 1, 1),
		Data:     summary,
		Warnings: sel.Warnings,
	})
}

func newMeta(session *pipeline.Session, params api.QueryParams, totalItems int, totalPages int) api.Meta {
	generatedAt := session.GeneratedAt
	meta := api.Meta{
		SessionId:   session.Id,
		GeneratedAt: &generatedAt,
		RoundId:     params.RoundId,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
	if params.ChainId != 0 {
		chainId := params.ChainId
		meta.ChainId = &chainId
	}
	return meta
}
