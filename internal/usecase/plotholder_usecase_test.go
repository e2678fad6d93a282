package usecase

import (
	"context"
	"errors"
	"testing"

	"cemiterio_api/internal/domain/entities"
	mock_interfaces "cemiterio_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPlotholderUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewPlotholderUseCase(nil)
		if _, err := uc.Create(context.Background(), entities.Plotholder{CPF: "", Name: "Ana"}); !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
		if _, err := uc.Create(context.Background(), entities.Plotholder{CPF: "111", Name: " "}); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlotholderRepository(ctrl)
		uc := NewPlotholderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Plotholder{}, entities.ErrPlotholderExists)

		if _, err := uc.Create(context.Background(), entities.Plotholder{CPF: "111", Name: "Ana"}); !errors.Is(err, entities.ErrPlotholderExists) {
			t.Fatalf("expected ErrPlotholderExists, got %v", err)
		}
	})

	t.Run("normalizes fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlotholderRepository(ctrl)
		uc := NewPlotholderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Plotholder{})).DoAndReturn(
			func(_ context.Context, h entities.Plotholder) (entities.Plotholder, error) {
				if h.CPF != "12345678909" || h.Name != "Ana" || h.Email != "ana@x.com" {
					t.Fatalf("unexpected plot-holder: %+v", h)
				}
				return h, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.Plotholder{CPF: "123.456.789-09", Name: " Ana ", Email: " ana@x.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPlotholderUseCase_Update(t *testing.T) {
	phone := "1199999"

	t.Run("empty patch", func(t *testing.T) {
		uc := NewPlotholderUseCase(nil)
		if _, err := uc.Update(context.Background(), "111", entities.PlotholderPatch{}); !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlotholderRepository(ctrl)
		uc := NewPlotholderUseCase(repo)

		repo.EXPECT().GetByCPF(gomock.Any(), "111").Return(entities.Plotholder{}, nil)

		if _, err := uc.Update(context.Background(), "111", entities.PlotholderPatch{Phone: &phone}); !errors.Is(err, entities.ErrPlotholderNotFound) {
			t.Fatalf("expected ErrPlotholderNotFound, got %v", err)
		}
	})

	t.Run("merges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPlotholderRepository(ctrl)
		uc := NewPlotholderUseCase(repo)

		repo.EXPECT().GetByCPF(gomock.Any(), "111").Return(entities.Plotholder{CPF: "111", Name: "Ana"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.Plotholder) (entities.Plotholder, error) { return h, nil },
		)

		h, err := uc.Update(context.Background(), "111", entities.PlotholderPatch{Phone: &phone})
		if err != nil || h.Name != "Ana" || h.Phone != phone {
			t.Fatalf("unexpected result: %+v %v", h, err)
		}
	})
}

func TestPlotholderUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPlotholderRepository(ctrl)
	uc := NewPlotholderUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "111").Return(entities.ErrPlotholderInUse)
	if err := uc.Delete(context.Background(), "111"); !errors.Is(err, entities.ErrPlotholderInUse) {
		t.Fatalf("expected ErrPlotholderInUse, got %v", err)
	}
}
