package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/thirdweb-dev/grants-insight/internal/pipeline"
	"github.com/thirdweb-dev/grants-insight/internal/source"
)

var (
	ErrNoSession   = errors.New("dashboard data is not available yet")
	ErrNoSource    = errors.New("grants indexer source is not configured")
	ErrRoundAbsent = errors.New("round not found")
)

// SessionProvider exposes the most recent dashboard session, nil until the first refresh succeeds.
type SessionProvider interface {
	Current() *pipeline.Session
}

// package-level variables shared by all handlers
var (
	stateMu         sync.RWMutex
	sessionProvider SessionProvider
	dataSource      source.ISource
)

func SetSessionProvider(provider SessionProvider) {
	stateMu.Lock()
	defer stateMu.Unlock()
	sessionProvider = provider
}

func SetSource(src source.ISource) {
	stateMu.Lock()
	defer stateMu.Unlock()
	dataSource = src
}

func getSession() (*pipeline.Session, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if sessionProvider == nil {
		return nil, ErrNoSession
	}
	session := sessionProvider.Current()
	if session == nil {
		return nil, ErrNoSession
	}
	return session, nil
}

func getSource() (source.ISource, error) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if dataSource == nil {
		return nil, ErrNoSource
	}
	return dataSource, nil
}

func sendJSONResponse(c *gin.Context, response interface{}) {
	c.JSON(http.StatusOK, response)
}
