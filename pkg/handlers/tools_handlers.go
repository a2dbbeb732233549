package handlers

import (
	"returnfilers/pkg/calculator"
	"returnfilers/pkg/response"

	"github.com/gin-gonic/gin"
)

// CalculateGST runs the tax calculator widget
func (h *HandlerService) CalculateGST(c *gin.Context) {
	var req calculator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid calculator input", err))
		return
	}

	result, err := calculator.Calculate(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	response.OK(c, result)
}

// GSTRates lists the supported slabs for the calculator's dropdown
func (h *HandlerService) GSTRates(c *gin.Context) {
	response.OK(c, gin.H{"rates": calculator.SupportedRates})
}
