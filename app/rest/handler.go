package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/controller"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EndpointHandler struct {
	provisionerUseCase controller.ProvisionerUseCase
	logger             *zap.SugaredLogger
}

func NewEndpointHandler(provisionerUseCase controller.ProvisionerUseCase, logger *zap.SugaredLogger) *EndpointHandler {
	return &EndpointHandler{
		provisionerUseCase: provisionerUseCase,
		logger:             logger,
	}
}

func (h *EndpointHandler) Apply(ctx *gin.Context) {
	var request entity.ApplyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil && ctx.Request.ContentLength > 0 {
		h.logger.Errorf("failed to unmarshall body err: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("failed to unmarshall body err: %v", err),
		})
		return
	}
	response, err := h.provisionerUseCase.ApplyEnvironment(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to apply environment err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to apply environment err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) Teardown(ctx *gin.Context) {
	var request entity.TeardownRequest

	if err := ctx.ShouldBindJSON(&request); err != nil && ctx.Request.ContentLength > 0 {
		h.logger.Errorf("failed to unmarshall body err: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("failed to unmarshall body err: %v", err),
		})
		return
	}
	response, err := h.provisionerUseCase.TeardownEnvironment(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to teardown environment err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to teardown environment err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) Resolve(ctx *gin.Context) {
	request := entity.ResolveRequest{
		Tier:        ctx.Param("tier"),
		Environment: ctx.Query("environment"),
	}
	response, err := h.provisionerUseCase.ResolveTier(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to resolve tier err: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("failed to resolve tier err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) RunStatus(ctx *gin.Context) {
	request := entity.RunStatusRequest{
		RunID: ctx.Param("run_id"),
	}
	response, err := h.provisionerUseCase.GetRunStatus(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to get run status err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to get run status err: %v", err),
		})
		return
	}
	if response.StatusCode == http.StatusNotFound {
		h.logger.Errorf("Sorry, no run '%s' recorded in database", request.RunID)
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Sorry, no run '%s' recorded in database", request.RunID),
		})
		return
	}
	ctx.JSON(response.StatusCode, response)
}

func (h *EndpointHandler) Runs(ctx *gin.Context) {
	response, err := h.provisionerUseCase.ListRuns(ctx)
	if err != nil {
		h.logger.Errorf("failed to list runs err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to list runs err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) LatestRun(ctx *gin.Context) {
	request := entity.LatestRunRequest{
		Type: ctx.Query("type"),
	}
	response, err := h.provisionerUseCase.GetLatestRun(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to get latest run err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to get latest run err: %v", err),
		})
		return
	}
	if response.StatusCode == http.StatusNotFound {
		h.logger.Errorf("Sorry, no runs recorded in database")
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": "Sorry, no runs recorded in database",
		})
		return
	}
	ctx.JSON(response.StatusCode, response)
}

func (h *EndpointHandler) RemoveRun(ctx *gin.Context) {
	request := entity.RemoveRunRequest{
		RunID: ctx.Param("run_id"),
	}
	response, err := h.provisionerUseCase.RemoveRun(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to remove run err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to remove run err: %v", err),
		})
		return
	}
	switch response.StatusCode {
	case http.StatusNotFound:
		h.logger.Errorf("Sorry, no run '%s' recorded in database", request.RunID)
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Sorry, no run '%s' recorded in database", request.RunID),
		})
	case http.StatusConflict:
		h.logger.Errorf("run '%s' is still in progress", request.RunID)
		ctx.JSON(http.StatusConflict, gin.H{
			"message": fmt.Sprintf("run '%s' is still in progress", request.RunID),
		})
	default:
		ctx.JSON(http.StatusOK, response)
	}
}

func (h *EndpointHandler) Snapshot(ctx *gin.Context) {
	request := entity.SnapshotRequest{
		RunID: ctx.Param("run_id"),
	}
	response, err := h.provisionerUseCase.GetRunSnapshot(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to read snapshot err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to read snapshot err: %v", err),
		})
		return
	}
	if response.StatusCode == http.StatusNotFound {
		h.logger.Errorf("Sorry, no snapshot '%s' recorded on disk", request.RunID)
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Sorry, no snapshot '%s' recorded on disk", request.RunID),
		})
		return
	}
	ctx.Data(http.StatusOK, "application/json", response.Document)
}

func (h *EndpointHandler) Protection(ctx *gin.Context) {
	request := entity.ProtectionRequest{
		Environment: ctx.Query("environment"),
	}
	response, err := h.provisionerUseCase.GetProtection(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to get protection err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to get protection err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) Policy(ctx *gin.Context) {
	response, err := h.provisionerUseCase.DescribePolicy(ctx)
	if err != nil {
		h.logger.Errorf("failed to describe policy err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to describe policy err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) SnapshotPresignedURL(ctx *gin.Context) {
	var expiration int
	if raw := ctx.Query("expiration"); raw != "" {
		var err error
		expiration, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Errorf("failed to parse value from url err: %v", err)
			ctx.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("failed to parse value from url err: %v", err),
			})
			return
		}
	}
	request := entity.SnapshotURLRequest{
		RunID:      ctx.Param("run_id"),
		Expiration: expiration,
	}
	response, err := h.provisionerUseCase.CreateSnapshotPresignedURL(ctx, request)
	if err != nil {
		h.logger.Errorf("failed to create snapshot presigned url err: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"message": fmt.Sprintf("failed to create snapshot presigned urls err: %v", err),
		})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (h *EndpointHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "OK",
	})
}
