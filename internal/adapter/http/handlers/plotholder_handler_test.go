package handlers

import (
	"net/http"
	"testing"

	"cemiterio_api/internal/adapter/http/handlers/mocks"
	"cemiterio_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPlotholderRouter(h *PlotholderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/titular", h.CreatePlotholder)
	r.GET("/titular", h.ListPlotholders)
	r.GET("/titular/:cpf", h.GetPlotholder)
	r.PUT("/titular/:cpf", h.UpdatePlotholder)
	r.DELETE("/titular/:cpf", h.DeletePlotholder)
	return r
}

func TestPlotholderHandler_CreatePlotholder(t *testing.T) {
	t.Run("invalid cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPlotholderHandler(mocks.NewMockIPlotholderUseCase(ctrl))

		w := perform(newPlotholderRouter(h), http.MethodPost, "/titular", `{"cpf":"abc","nome":"Ana"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPlotholderUseCase(ctrl)
		h := NewPlotholderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Plotholder{}, entities.ErrPlotholderExists)

		w := perform(newPlotholderRouter(h), http.MethodPost, "/titular", `{"cpf":"12345678909","nome":"Ana"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPlotholderUseCase(ctrl)
		h := NewPlotholderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), entities.Plotholder{CPF: "123.456.789-09", Name: "Ana", Email: "ana@example.com"}).
			Return(entities.Plotholder{CPF: "12345678909", Name: "Ana", Email: "ana@example.com"}, nil)

		w := perform(newPlotholderRouter(h), http.MethodPost, "/titular", `{"cpf":"123.456.789-09","nome":"Ana","email":"ana@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["cpf"] != "12345678909" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPlotholderHandler_UpdatePlotholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPlotholderUseCase(ctrl)
	h := NewPlotholderHandler(uc)

	uc.EXPECT().Update(gomock.Any(), "12345678909", gomock.Any()).
		DoAndReturn(func(_ any, _ string, p entities.PlotholderPatch) (entities.Plotholder, error) {
			if p.Phone == nil || *p.Phone != "1199999" || p.Name != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			return entities.Plotholder{CPF: "12345678909", Name: "Ana", Phone: "1199999"}, nil
		})

	w := perform(newPlotholderRouter(h), http.MethodPut, "/titular/12345678909", `{"telefone":"1199999"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPlotholderHandler_DeletePlotholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPlotholderUseCase(ctrl)
	h := NewPlotholderHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "12345678909").Return(entities.ErrPlotholderInUse)
	uc.EXPECT().Delete(gomock.Any(), "98765432100").Return(nil)

	if w := perform(newPlotholderRouter(h), http.MethodDelete, "/titular/12345678909", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if w := perform(newPlotholderRouter(h), http.MethodDelete, "/titular/98765432100", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestPlotholderHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPlotholderUseCase(ctrl)
	h := NewPlotholderHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Plotholder{{CPF: "12345678909"}}, nil)
	uc.EXPECT().GetByCPF(gomock.Any(), "11111111111").Return(entities.Plotholder{}, entities.ErrPlotholderNotFound)

	if w := perform(newPlotholderRouter(h), http.MethodGet, "/titular", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(newPlotholderRouter(h), http.MethodGet, "/titular/11111111111", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPing(t *testing.T) {
	r := gin.New()
	r.GET("/ping", Ping)
	w := perform(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["message"] != "pong" {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}
