package api

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/treedo/treedo-backend/usecases"
)

// slack given to the request timeout middleware to write its own answer
const serverTimeoutMargin = 5 * time.Second

// NewServer registers the routes on the router and returns a server listening on every
// interface. Cleartext HTTP/2 is accepted next to HTTP/1.1.
func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases) *http.Server {
	addRoutes(router, conf, uc)

	connectionTimeout := conf.DefaultTimeout + serverTimeoutMargin
	return &http.Server{
		Addr:              net.JoinHostPort("", conf.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{IdleTimeout: connectionTimeout}),
		ReadHeaderTimeout: conf.DefaultTimeout,
		ReadTimeout:       connectionTimeout,
		WriteTimeout:      connectionTimeout,
		IdleTimeout:       connectionTimeout,
	}
}
