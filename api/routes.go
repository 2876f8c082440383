package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/treedo/treedo-backend/usecases"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.StaticFS("/public", publicFileSystem())

	maxFormSize := conf.MaxFormSizeBytes
	if maxFormSize <= 0 {
		maxFormSize = DEFAULT_MAX_FORM_SIZE_BYTES
	}

	router := r.Group("", timeoutMiddleware(conf.DefaultTimeout))

	router.GET("/", handleGetRootList(uc))
	router.POST("/", limits.RequestSizeLimiter(maxFormSize), handleCreateItem(uc))
	router.POST("/delete", limits.RequestSizeLimiter(maxFormSize), handleDeleteItem(uc))
	router.GET("/:item_id", handleGetListByLinkingItem(uc))
}
