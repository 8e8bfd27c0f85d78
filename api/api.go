package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
)

const (
	DEFAULT_LIMIT = 50
	MAX_LIMIT     = 1000
)

type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	SupportId string `json:"support_id"`
}

type QueryParams struct {
	ChainId   uint64 `schema:"chain_id"`
	RoundId   string `schema:"round_id"`
	SortBy    string `schema:"sort_by"`
	SortOrder string `schema:"sort_order"`
	Page      int    `schema:"page"`
	Limit     int    `schema:"limit"`
}

type Meta struct {
	SessionId   string     `json:"session_id,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	ChainId     *uint64    `json:"chain_id,omitempty"`
	RoundId     string     `json:"round_id,omitempty"`
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
	TotalItems  int        `json:"total_items"`
	TotalPages  int        `json:"total_pages"`
}

type QueryResponse struct {
	Meta     Meta               `json:"meta"`
	Data     interface{}        `json:"data"`
	Warnings []pipeline.Warning `json:"warnings,omitempty"`
}

func writeError(c *gin.Context, message string, code int) {
	resp := Error{
		Code:      code,
		Message:   message,
		SupportId: uuid.New().String(),
	}
	if code >= http.StatusInternalServerError {
		log.Error().Int("code", code).Str("support_id", resp.SupportId).Msg(message)
	}
	c.AbortWithStatusJSON(code, resp)
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusNotFound)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
	UnauthorizedErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusUnauthorized)
	}
	ServiceUnavailableErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusServiceUnavailable)
	}
)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func ParseQueryParams(r *http.Request) (QueryParams, error) {
	var params QueryParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		log.Debug().Err(err).Msg("Error parsing query params")
		return QueryParams{}, err
	}

	params.SortOrder = strings.ToLower(params.SortOrder)
	if params.SortOrder != "" && params.SortOrder != "asc" && params.SortOrder != "desc" {
		return QueryParams{}, fmt.Errorf("invalid sort_order '%s', expected asc or desc", params.SortOrder)
	}
	if params.Page < 0 {
		return QueryParams{}, fmt.Errorf("page must not be negative")
	}
	if params.Limit <= 0 {
		params.Limit = DEFAULT_LIMIT
	}
	if params.Limit > MAX_LIMIT {
		params.Limit = MAX_LIMIT
	}
	return params, nil
}

func GetChainId(c *gin.Context) (uint64, error) {
	chainId := c.Param("chainId")
	chainIdInt, err := strconv.ParseUint(chainId, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id '%s'", chainId)
	}
	return chainIdInt, nil
}

// Paginate returns the page of items selected by page and limit, and the number of pages.
func Paginate[T any](items []T, page int, limit int) ([]T, int) {
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}
	totalPages := (len(items) + limit - 1) / limit
	if page < 0 || page >= totalPages {
		return []T{}, totalPages
	}
	start := page * limit
	end := min(start+limit, len(items))
	return items[start:end], totalPages
}
