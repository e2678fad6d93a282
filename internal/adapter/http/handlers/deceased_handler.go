package handlers

import (
	"log"
	"net/http"

	request "cemiterio_api/internal/adapter/http/dto/request"
	response "cemiterio_api/internal/adapter/http/dto/response"
	"cemiterio_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DeceasedHandler serves /falecido. Burials and exhumations go through the
// occupancy use case; reads go straight to the deceased use case.
type DeceasedHandler struct {
	deceased  usecase.IDeceasedUseCase
	occupancy usecase.IOccupancyUseCase
}

func NewDeceasedHandler(deceased usecase.IDeceasedUseCase, occupancy usecase.IOccupancyUseCase) *DeceasedHandler {
	return &DeceasedHandler{deceased: deceased, occupancy: occupancy}
}

// RecordDeath godoc
// @Summary      Record burial
// @Description  Inserts the deceased record and takes one gravesite slot in one transaction. Requires an active contract for (cpf, id_tumulo).
// @Tags         falecido
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateDeceasedRequest  true  "Deceased record"
// @Success      201   {object}  response.DeceasedOccupancyResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /falecido [post]
func (h *DeceasedHandler) RecordDeath(c *gin.Context) {
	var payload request.CreateDeceasedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}
	d, err := payload.ToEntity()
	if err != nil {
		respondError(c, "record-death", err)
		return
	}

	created, g, err := h.occupancy.RecordDeath(c.Request.Context(), d)
	if err != nil {
		respondError(c, "record-death", err)
		return
	}
	log.Printf("[deceased][handler] recorded deceased_id=%s id_tumulo=%d ocupacao=%d/%d", created.ID, g.ID, g.Occupancy, g.Capacity)
	c.JSON(http.StatusCreated, response.DeceasedOccupancyResponse{
		Falecido: response.FromDeceased(created),
		Tumulo:   response.FromGravesite(g),
	})
}

// GetDeceased godoc
// @Summary  Get deceased record
// @Tags     falecido
// @Produce  json
// @Param    id   path      string  true  "Deceased id"
// @Success  200  {object}  response.DeceasedResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /falecido/{id} [get]
func (h *DeceasedHandler) GetDeceased(c *gin.Context) {
	d, err := h.deceased.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get-deceased", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeceased(d))
}

// ListDeceased godoc
// @Summary  List deceased records
// @Tags     falecido
// @Produce  json
// @Param    id_tumulo  query    int     false  "Gravesite id"
// @Param    cpf        query    string  false  "Plot-holder CPF"
// @Success  200        {array}  response.DeceasedResponse
// @Router   /falecido [get]
func (h *DeceasedHandler) ListDeceased(c *gin.Context) {
	var q request.DeceasedListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		rejectBind(c, errInvalidQuery, err)
		return
	}
	items, err := h.deceased.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, "list-deceased", err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeceasedList(items))
}

// RemoveDeceased godoc
// @Summary      Exhume
// @Description  Deletes the deceased record and frees its gravesite slot in one transaction
// @Tags         falecido
// @Produce      json
// @Param        id   path      string  true  "Deceased id"
// @Success      200  {object}  response.DeceasedOccupancyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /falecido/{id} [delete]
func (h *DeceasedHandler) RemoveDeceased(c *gin.Context) {
	d, g, err := h.occupancy.RemoveDeceased(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "exhume", err)
		return
	}
	log.Printf("[deceased][handler] exhumed deceased_id=%s id_tumulo=%d status=%s", d.ID, g.ID, g.Status)
	c.JSON(http.StatusOK, response.DeceasedOccupancyResponse{
		Falecido: response.FromDeceased(d),
		Tumulo:   response.FromGravesite(g),
	})
}
