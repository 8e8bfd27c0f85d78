package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/grants-insight/api"
	config "github.com/thirdweb-dev/grants-insight/configs"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization enforces basic auth when api.basicAuth.username is configured.
func Authorization(c *gin.Context) {
	expected := config.Cfg.API.BasicAuth
	if expected.Username == "" {
		c.Next()
		return
	}

	username, password, ok := c.Request.BasicAuth()
	if !ok || !validateCredentials(expected, username, password) {
		log.Warn().Str("path", c.Request.URL.Path).Str("ip", c.ClientIP()).Msg(ErrUnauthorized.Error())
		api.UnauthorizedErrorHandler(c, ErrUnauthorized)
		c.Abort()
		return
	}
	c.Next()
}

func validateCredentials(expected config.BasicAuthConfig, username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(expected.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(expected.Password)) == 1
	return userMatch && passMatch
}
