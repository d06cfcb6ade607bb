package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type router struct {
}

func NewRouter() *router {
	return &router{}
}

func (s *router) GetHandler(eh *EndpointHandler) http.Handler {
	r := gin.Default()

	r.NoRoute(func(ctx *gin.Context) { // check for 404
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": "Page not found",
		})
	})

	root := r.Group("/")
	{
		root.POST("/apply", eh.Apply)
		root.POST("/teardown", eh.Teardown)
		root.GET("/resolve/:tier", eh.Resolve)
		root.GET("/runstatus/:run_id", eh.RunStatus)
		root.GET("/runs", eh.Runs)
		root.GET("/runs/latest", eh.LatestRun)
		root.DELETE("/runs/:run_id", eh.RemoveRun)
		root.GET("/policy", eh.Policy)
		root.GET("/protection", eh.Protection)
		root.GET("/snapshot/local/:run_id", eh.Snapshot)
		root.GET("/snapshot/s3/:run_id", eh.SnapshotPresignedURL)
		root.GET("/health", eh.Health)
	}

	return r
}
