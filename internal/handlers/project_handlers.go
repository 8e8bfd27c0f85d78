package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/grants-insight/api"
	"github.com/thirdweb-dev/grants-insight/internal/common"
)

// @Summary Get projects
// @Description Enriched projects of the configured rounds
// @Tags projects
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param chain_id query int false "Restrict to a chain"
// @Param round_id query string false "Restrict to a round"
// @Param sort_by query string false "Field to sort results by"
// @Param sort_order query string false "Sort order (asc or desc)"
// @Param page query int false "Page number for pagination"
// @Param limit query int false "Number of items per page" default(50)
// @Success 200 {object} api.QueryResponse{data=[]common.Project}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /projects [get]
func GetProjects(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if err := api.ValidateSortBy("projects", queryParams.SortBy); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	session, err := getSession()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	sel := selectRows(session, queryParams.ChainId, queryParams.RoundId)
	projects := append([]common.Project{}, sel.Projects...)
	sortRows(projects, projectComparators, queryParams.SortBy, queryParams.SortOrder)
	page, totalPages := api.Paginate(projects, queryParams.Page, queryParams.Limit)

	sendJSONResponse(c, api.QueryResponse{
		Meta:     newMeta(session, queryParams, len(projects), totalPages),
		Data:     page,
		Warnings: sel.Warnings,
	})
}
