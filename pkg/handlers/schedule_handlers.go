package handlers

import (
	"errors"
	"net/http"

	"returnfilers/pkg/response"
	"returnfilers/pkg/scheduler"

	"github.com/gin-gonic/gin"
)

// GetScheduledJobs lists the maintenance jobs and their last outcome
func (h *HandlerService) GetScheduledJobs(c *gin.Context) {
	if h.scheduler == nil {
		HandleError(c, NewAPIError(http.StatusServiceUnavailable, "Scheduler not available", ErrServiceUnavailable))
		return
	}
	response.OK(c, gin.H{
		"jobs":   h.scheduler.GetJobs(),
		"status": h.scheduler.GetStatus(),
	})
}

// RunScheduledJob triggers a job immediately
func (h *HandlerService) RunScheduledJob(c *gin.Context) {
	if h.scheduler == nil {
		HandleError(c, NewAPIError(http.StatusServiceUnavailable, "Scheduler not available", ErrServiceUnavailable))
		return
	}

	err := h.scheduler.RunNow(c.Param("id"))
	switch {
	case errors.Is(err, scheduler.ErrJobNotFound):
		HandleError(c, NewNotFoundError("Job not found", err))
	case errors.Is(err, scheduler.ErrJobRunning):
		HandleError(c, NewAPIError(http.StatusConflict, "Job already running", err))
	case err != nil:
		HandleError(c, NewInternalServerError("Job failed", err))
	default:
		response.JSON(c, http.StatusOK, gin.H{"id": c.Param("id")}, "Job completed")
	}
}
