package handlers

import (
	"net/http"

	request "cemiterio_api/internal/adapter/http/dto/request"
	response "cemiterio_api/internal/adapter/http/dto/response"
	"cemiterio_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PlotholderHandler struct {
	plotholders usecase.IPlotholderUseCase
}

func NewPlotholderHandler(uc usecase.IPlotholderUseCase) *PlotholderHandler {
	return &PlotholderHandler{plotholders: uc}
}

// CreatePlotholder godoc
// @Summary  Create plot-holder
// @Tags     titular
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreatePlotholderRequest  true  "Plot-holder"
// @Success  201   {object}  response.PlotholderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /titular [post]
func (h *PlotholderHandler) CreatePlotholder(c *gin.Context) {
	var payload request.CreatePlotholderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}
	created, err := h.plotholders.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "create-plotholder", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPlotholder(created))
}

// GetPlotholder godoc
// @Summary  Get plot-holder
// @Tags     titular
// @Produce  json
// @Param    cpf  path      string  true  "CPF"
// @Success  200  {object}  response.PlotholderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /titular/{cpf} [get]
func (h *PlotholderHandler) GetPlotholder(c *gin.Context) {
	holder, err := h.plotholders.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, "get-plotholder", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlotholder(holder))
}

// ListPlotholders godoc
// @Summary  List plot-holders
// @Tags     titular
// @Produce  json
// @Success  200  {array}  response.PlotholderResponse
// @Router   /titular [get]
func (h *PlotholderHandler) ListPlotholders(c *gin.Context) {
	items, err := h.plotholders.List(c.Request.Context())
	if err != nil {
		respondError(c, "list-plotholders", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlotholders(items))
}

// UpdatePlotholder godoc
// @Summary  Update plot-holder
// @Tags     titular
// @Accept   json
// @Produce  json
// @Param    cpf   path      string                           true  "CPF"
// @Param    body  body      request.UpdatePlotholderRequest  true  "Fields"
// @Success  200   {object}  response.PlotholderResponse
// @Failure  404   {object}  pkg.HTTPError
// @Router   /titular/{cpf} [put]
func (h *PlotholderHandler) UpdatePlotholder(c *gin.Context) {
	var payload request.UpdatePlotholderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}
	updated, err := h.plotholders.Update(c.Request.Context(), c.Param("cpf"), payload.ToPatch())
	if err != nil {
		respondError(c, "update-plotholder", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlotholder(updated))
}

// DeletePlotholder godoc
// @Summary      Delete plot-holder
// @Description  Refused while contracts or deceased records reference the CPF
// @Tags         titular
// @Param        cpf  path  string  true  "CPF"
// @Success      204
// @Failure      409  {object}  pkg.HTTPError
// @Router       /titular/{cpf} [delete]
func (h *PlotholderHandler) DeletePlotholder(c *gin.Context) {
	if err := h.plotholders.Delete(c.Request.Context(), c.Param("cpf")); err != nil {
		respondError(c, "delete-plotholder", err)
		return
	}
	c.Status(http.StatusNoContent)
}
