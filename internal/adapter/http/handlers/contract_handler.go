package handlers

import (
	"log"
	"net/http"

	request "cemiterio_api/internal/adapter/http/dto/request"
	response "cemiterio_api/internal/adapter/http/dto/response"
	"cemiterio_api/internal/domain/entities"
	"cemiterio_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ContractHandler serves /contrato. Creation and cancellation change the
// gravesite and go through the occupancy use case.
type ContractHandler struct {
	contracts usecase.IContractUseCase
	occupancy usecase.IOccupancyUseCase
}

func NewContractHandler(contracts usecase.IContractUseCase, occupancy usecase.IOccupancyUseCase) *ContractHandler {
	return &ContractHandler{contracts: contracts, occupancy: occupancy}
}

// CreateContract godoc
// @Summary      Reserve gravesite
// @Description  Creates a contract and moves the gravesite from vazio to reservado in one transaction
// @Tags         contrato
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateContractRequest  true  "Contract"
// @Success      201   {object}  response.ContractReservationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /contrato [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}
	contract, err := payload.ToEntity()
	if err != nil {
		respondError(c, "reserve-gravesite", err)
		return
	}

	created, g, err := h.occupancy.ReserveGravesite(c.Request.Context(), contract)
	if err != nil {
		respondError(c, "reserve-gravesite", err)
		return
	}
	log.Printf("[contract][handler] reserved id_tumulo=%d cpf=%s", created.GravesiteID, created.CPF)
	c.JSON(http.StatusCreated, response.ContractReservationResponse{
		Contrato: response.FromContract(created),
		Tumulo:   response.FromGravesite(g),
	})
}

// ListContracts godoc
// @Summary  List contracts
// @Tags     contrato
// @Produce  json
// @Param    cpf        query    string  false  "Plot-holder CPF"
// @Param    id_tumulo  query    int     false  "Gravesite id"
// @Param    status     query    string  false  "ativo | reservado"
// @Success  200        {array}  response.ContractResponse
// @Router   /contrato [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var q request.ContractListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		rejectBind(c, errInvalidQuery, err)
		return
	}
	items, err := h.contracts.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, "list-contracts", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(items))
}

// ListExpiringContracts godoc
// @Summary  Contracts expiring soon
// @Tags     contrato
// @Produce  json
// @Param    dias  query    int  false  "Window in days (default 30)"
// @Success  200   {array}  response.ContractResponse
// @Router   /contrato/vencendo [get]
func (h *ContractHandler) ListExpiringContracts(c *gin.Context) {
	var q request.ExpiringContractsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		rejectBind(c, errInvalidQuery, err)
		return
	}
	items, err := h.contracts.ListExpiring(c.Request.Context(), q.ResolveDays())
	if err != nil {
		respondError(c, "list-expiring-contracts", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContracts(items))
}

// GetContract godoc
// @Summary  Get contract
// @Tags     contrato
// @Produce  json
// @Param    cpf        path      string  true  "Plot-holder CPF"
// @Param    id_tumulo  path      int     true  "Gravesite id"
// @Success  200        {object}  response.ContractResponse
// @Failure  404        {object}  pkg.HTTPError
// @Router   /contrato/{cpf}/{id_tumulo} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	gravesiteID, ok := parseGravesiteID(c, "id_tumulo")
	if !ok {
		return
	}
	contract, err := h.contracts.GetByKey(c.Request.Context(), c.Param("cpf"), gravesiteID)
	if err != nil {
		respondError(c, "get-contract", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ChangeContractStatus godoc
// @Summary  Change contract status
// @Tags     contrato
// @Accept   json
// @Produce  json
// @Param    cpf        path      string                               true  "Plot-holder CPF"
// @Param    id_tumulo  path      int                                  true  "Gravesite id"
// @Param    body       body      request.UpdateContractStatusRequest  true  "Status"
// @Success  200        {object}  response.ContractResponse
// @Failure  404        {object}  pkg.HTTPError
// @Failure  409        {object}  pkg.HTTPError
// @Router   /contrato/{cpf}/{id_tumulo}/status [patch]
func (h *ContractHandler) ChangeContractStatus(c *gin.Context) {
	gravesiteID, ok := parseGravesiteID(c, "id_tumulo")
	if !ok {
		return
	}
	var payload request.UpdateContractStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}

	contract, err := h.contracts.ChangeStatus(c.Request.Context(), c.Param("cpf"), gravesiteID, entities.ContractStatus(payload.Status))
	if err != nil {
		respondError(c, "change-contract-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// UpdateContractTerms godoc
// @Summary      Update contract terms
// @Description  Merge edit of start date, term and value; the due date is derived again
// @Tags         contrato
// @Accept       json
// @Produce      json
// @Param        cpf        path      string                              true  "Plot-holder CPF"
// @Param        id_tumulo  path      int                                 true  "Gravesite id"
// @Param        body       body      request.UpdateContractTermsRequest  true  "Terms"
// @Success      200        {object}  response.ContractResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /contrato/{cpf}/{id_tumulo} [put]
func (h *ContractHandler) UpdateContractTerms(c *gin.Context) {
	gravesiteID, ok := parseGravesiteID(c, "id_tumulo")
	if !ok {
		return
	}
	var payload request.UpdateContractTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		rejectBind(c, errInvalidPayload, err)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		respondError(c, "update-contract-terms", err)
		return
	}

	contract, err := h.contracts.UpdateTerms(c.Request.Context(), c.Param("cpf"), gravesiteID, patch)
	if err != nil {
		respondError(c, "update-contract-terms", err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// CancelContract godoc
// @Summary      Cancel contract
// @Description  Deletes the contract and releases the gravesite when nothing else holds it
// @Tags         contrato
// @Produce      json
// @Param        cpf        path      string  true  "Plot-holder CPF"
// @Param        id_tumulo  path      int     true  "Gravesite id"
// @Success      200        {object}  response.ContractReleaseResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /contrato/{cpf}/{id_tumulo} [delete]
func (h *ContractHandler) CancelContract(c *gin.Context) {
	gravesiteID, ok := parseGravesiteID(c, "id_tumulo")
	if !ok {
		return
	}
	g, err := h.occupancy.ReleaseGravesite(c.Request.Context(), c.Param("cpf"), gravesiteID)
	if err != nil {
		respondError(c, "release-gravesite", err)
		return
	}
	log.Printf("[contract][handler] cancelled id_tumulo=%d status=%s", g.ID, g.Status)
	c.JSON(http.StatusOK, response.ContractReleaseResponse{Tumulo: response.FromGravesite(g)})
}
