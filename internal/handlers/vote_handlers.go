package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/grants-insight/api"
	"github.com/thirdweb-dev/grants-insight/internal/report"
)

// @Summary Get votes
// @Description Enriched votes joined with the title of the project they were cast for
// @Tags votes
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chain_id query int false "Restrict to a chain"
// @Param round_id query string false "Restrict to a round"
// @Param sort_by query string false "Field to sort results by"
// @Param sort_order query string false "Sort order (asc or desc)"
// @Param page query int false "Page number for pagination"
// @Param limit query int false "Number of items per page" default(50)
// @Success 200 {object} api.QueryResponse{data=[]report.VoteWithTitle}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /votes [get]
func GetVotes(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if err := api.ValidateSortBy("votes", queryParams.SortBy); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	session, err := getSession()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	sel := selectRows(session, queryParams.ChainId, queryParams.RoundId)
	votes := report.VotesWithTitles(sel.Votes, sel.Projects)
	sortRows(votes, voteComparators, queryParams.SortBy, queryParams.SortOrder)
	page, totalPages := api.Paginate(votes, queryParams.Page, queryParams.Limit)

	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, queryParams, len(votes), totalPages),
		Data:     page,
		Warnings: sel.Warnings,
	})
}

// @Summary Get hourly contributions
// @Description Number of distinct votes per UTC hour, with empty hours filled in
// @Tags votes
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chain_id query int false "Restrict to a chain"
// @Param round_id query string false "Restrict to a round"
// @Success 200 {object} api.QueryResponse{data=[]report.HourlyBucket}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /contributions/hourly [get]
func GetHourlyContributions(c *gin.Context) {
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
	series := report.HourlyContributions(sel.Votes)

	queryParams.Page = 0
	queryParams.Limit = len(series)
	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, queryParams, len(series), 1),
		Data:     series,
		Warnings: sel.Warnings,
	})
}
