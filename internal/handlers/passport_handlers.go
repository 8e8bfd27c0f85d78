package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/grants-insight/api"
	"github.com/thirdweb-dev/grants-insight/internal/common"
	"github.com/thirdweb-dev/grants-insight/internal/source"
)

// @Summary Get passport scores
// @Description Passport scores of all donors, paged
// @Tags passports
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param sort_by query string false "Field to sort results by"
// @Param sort_order query string false "Sort order (asc or desc)"
// @Param page query int false "Page number for pagination"
// @Param limit query int false "Number of items per page" default(50)
// @Success 200 {object} api.QueryResponse{data=[]common.Passport}
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 500 {object} api.Error
// @Failure 503 {object} api.Error
// @Router /passports [get]
func GetPassports(c *gin.Context) {
	queryParams, err := api.ParseQueryParams(c.Request)
	if err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}
	if err := api.ValidateSortBy("passports", queryParams.SortBy); err != nil {
		api.BadRequestErrorHandler(c, err)
		return
	}

	src, err := getSource()
	if err != nil {
		api.ServiceUnavailableErrorHandler(c, err)
		return
	}

	passports, err := src.GetPassportScores(c.Request.Context())
	if err != nil {
		var fetchErr *source.FetchError
		if errors.As(err, &fetchErr) {
			log.Warn().Err(err).Msg("Error fetching passport scores")
			api.ServiceUnavailableErrorHandler(c, err)
			return
		}
		log.Error().Err(err).Msg("Error reading passport scores")
		api.InternalErrorHandler(c)
		return
	}

	passports = append([]common.Passport{}, passports...)
	sortRows(passports, passportComparators, queryParams.SortBy, queryParams.SortOrder)
	page, totalPages := api.Paginate(passports, queryParams.Page, queryParams.Limit)

	sendJSONResponse(c, api.QueryResponse{
		Meta: api.Meta{
			Page:       queryParams.Page,
			Limit:      queryParams.Limit,
			TotalItems: len(passports),
			TotalPages: totalPages,
		},
		Data: page,
	})
}
