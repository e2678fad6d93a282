package handlers

import (
	"log"
	"net/http"

	request "cemiterio_api/internal/adapter/http/dto/request"
	response "cemiterio_api/internal/adapter/http/dto/response"
	"cemiterio_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GravesiteHandler serves /tumulo. Field edits go through the occupancy use
// case so they are validated against current occupancy and contracts.
type GravesiteHandler struct {
	gravesites usecase.IGravesiteUseCase
	occupancy  usecase.IOccupancyUseCase
}

func NewGravesiteHandler(gravesites usecase.IGravesiteUseCase, occupancy usecase.IOccupancyUseCase) *GravesiteHandler {
	return &GravesiteHandler{gravesites: gravesites, occupancy: occupancy}
}

// CreateGravesite godoc
// @Summary      Create gravesite
// @Description  Registers an empty gravesite with occupancy 0
// @Tags         tumulo
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateGravesiteRequest  true  "Gravesite"
// @Success      201   {object}  response.GravesiteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /tumulo [post]
func (h *GravesiteHandler) CreateGravesite(c *gin.Context) {
	var payload request.CreateGravesiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}

	g, err := h.gravesites.Create(c.Request.Context(), payload.Tipo, payload.Capacidade, payload.ToLocation())
	if err != nil {
		respondError(c, "create-gravesite", err)
		return
	}
	log.Printf("[gravesite][handler] created id_tumulo=%d capacidade=%d", g.ID, g.Capacity)
	c.JSON(http.StatusCreated, response.FromGravesite(g))
}

// GetGravesite godoc
// @Summary  Get gravesite
// @Tags     tumulo
// @Produce  json
// @Param    id   path      int  true  "Gravesite id"
// @Success  200  {object}  response.GravesiteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /tumulo/{id} [get]
func (h *GravesiteHandler) GetGravesite(c *gin.Context) {
	id, ok := parseGravesiteID(c, "id")
	if !ok {
		return
	}
	g, err := h.gravesites.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "get-gravesite", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGravesite(g))
}

// ListGravesites godoc
// @Summary  List gravesites
// @Tags     tumulo
// @Produce  json
// @Param    status  query     string  false  "vazio | reservado | cheio"
// @Param    tipo    query     string  false  "Type"
// @Param    quadra  query     string  false  "Block"
// @Success  200     {array}   response.GravesiteResponse
// @Router   /tumulo [get]
func (h *GravesiteHandler) ListGravesites(c *gin.Context) {
	var q request.GravesiteListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		rejectBind(c, errInvalidQuery, err)
		return
	}
	items, err := h.gravesites.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, "list-gravesites", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGravesites(items))
}

// UpdateGravesite godoc
// @Summary      Update gravesite fields
// @Description  Merge edit; omitted fields keep their value. Rejects capacity below occupancy and statuses inconsistent with it.
// @Tags         tumulo
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true  "Gravesite id"
// @Param        body  body      request.UpdateGravesiteRequest  true  "Fields"
// @Success      200   {object}  response.GravesiteResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /tumulo/{id} [put]
func (h *GravesiteHandler) UpdateGravesite(c *gin.Context) {
	id, ok := parseGravesiteID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateGravesiteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}

	g, err := h.occupancy.UpdateGravesiteFields(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		respondError(c, "update-gravesite", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGravesite(g))
}

// DeleteGravesite godoc
// @Summary  Delete gravesite
// @Tags     tumulo
// @Param    id  path  int  true  "Gravesite id"
// @Success  204
// @Failure  409  {object}  pkg.HTTPError
// @Router   /tumulo/{id} [delete]
func (h *GravesiteHandler) DeleteGravesite(c *gin.Context) {
	id, ok := parseGravesiteID(c, "id")
	if !ok {
		return
	}
	if err := h.gravesites.Delete(c.Request.Context(), id); err != nil {
		respondError(c, "delete-gravesite", err)
		return
	}
	c.Status(http.StatusNoContent)
}
