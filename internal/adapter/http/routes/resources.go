package routes

import (
	"cemiterio_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPlotholders = "/titular"
	PathGravesites  = "/tumulo"
	PathContracts   = "/contrato"
	PathDeceased    = "/falecido"
)

func addPlotholderRoutes(r gin.IRouter, h *handlers.PlotholderHandler) {
	g := r.Group(PathPlotholders)
	{
		g.POST("", h.CreatePlotholder)
		g.GET("", h.ListPlotholders)
		g.GET("/:cpf", h.GetPlotholder)
		g.PUT("/:cpf", h.UpdatePlotholder)
		g.DELETE("/:cpf", h.DeletePlotholder)
	}
}

func addGravesiteRoutes(r gin.IRouter, h *handlers.GravesiteHandler) {
	g := r.Group(PathGravesites)
	{
		g.POST("", h.CreateGravesite)
		g.GET("", h.ListGravesites)
		g.GET("/:id", h.GetGravesite)
		g.PUT("/:id", h.UpdateGravesite)
		g.DELETE("/:id", h.DeleteGravesite)
	}
}

func addContractRoutes(r gin.IRouter, h *handlers.ContractHandler) {
	g := r.Group(PathContracts)
	{
		g.POST("", h.CreateContract)
		g.GET("", h.ListContracts)
		g.GET("/vencendo", h.ListExpiringContracts)
		g.GET("/:cpf/:id_tumulo", h.GetContract)
		g.PUT("/:cpf/:id_tumulo", h.UpdateContractTerms)
		g.PATCH("/:cpf/:id_tumulo/status", h.ChangeContractStatus)
		g.DELETE("/:cpf/:id_tumulo", h.CancelContract)
	}
}

func addDeceasedRoutes(r gin.IRouter, h *handlers.DeceasedHandler) {
	g := r.Group(PathDeceased)
	{
		g.POST("", h.RecordDeath)
		g.GET("", h.ListDeceased)
		g.GET("/:id", h.GetDeceased)
		g.DELETE("/:id", h.RemoveDeceased)
	}
}
