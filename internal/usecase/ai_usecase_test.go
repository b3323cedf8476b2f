package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_xyz/internal/domain/entities"
	mock_interfaces "oficina_xyz/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAIUseCase_Diagnose(t *testing.T) {
	t.Run("symptoms too short never calls the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		// no EXPECT on the client: validation short-circuits
		_, err := uc.Diagnose(context.Background(), "barulho", "")
		if !errors.Is(err, ErrSymptomsTooShort) {
			t.Fatalf("expected ErrSymptomsTooShort, got %v", err)
		}
	})

	t.Run("clamps confidence into range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		client.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"diagnosis":"correia frouxa","confidence_level":1.7,"recommended_actions":["trocar correia"]}`), nil)

		res, err := uc.Diagnose(context.Background(), "barulho agudo ao ligar o motor pela manha", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ConfidenceLevel != 1 {
			t.Fatalf("expected clamped confidence 1, got %v", res.ConfidenceLevel)
		}
		if res.Diagnosis != "correia frouxa" {
			t.Fatalf("unexpected diagnosis: %q", res.Diagnosis)
		}
	})

	t.Run("service failure maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		client.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		_, err := uc.Diagnose(context.Background(), "barulho agudo ao ligar o motor pela manha", "")
		if !errors.Is(err, ErrAIServiceUnavailable) {
			t.Fatalf("expected ErrAIServiceUnavailable, got %v", err)
		}
	})

	t.Run("malformed reply maps to unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		client.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"confidence_level":"alta"}`), nil)

		_, err := uc.Diagnose(context.Background(), "barulho agudo ao ligar o motor pela manha", "")
		if !errors.Is(err, ErrAIServiceUnavailable) {
			t.Fatalf("expected ErrAIServiceUnavailable, got %v", err)
		}
	})

	t.Run("nil client maps to unavailable", func(t *testing.T) {
		uc := NewAIUseCase(nil)
		_, err := uc.Diagnose(context.Background(), "barulho agudo ao ligar o motor pela manha", "")
		if !errors.Is(err, ErrAIServiceUnavailable) {
			t.Fatalf("expected ErrAIServiceUnavailable, got %v", err)
		}
	})
}

func TestAIUseCase_SummarizeOrder(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		uc := NewAIUseCase(nil)
		_, err := uc.SummarizeOrder(context.Background(), OrderSummaryInput{})
		if !errors.Is(err, ErrEmptyOrderContent) {
			t.Fatalf("expected ErrEmptyOrderContent, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		client.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"summary":"Troca de oleo e filtro executada."}`), nil)

		res, err := uc.SummarizeOrder(context.Background(), OrderSummaryInput{
			Services: []entities.OrderService{{Description: "Troca de oleo", Quantity: 1, UnitPrice: 80}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Summary == "" {
			t.Fatalf("expected summary")
		}
	})
}

func TestAIUseCase_AnalyzeVehicleHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		uc := NewAIUseCase(nil)
		_, err := uc.AnalyzeVehicleHistory(context.Background(), "   ", "")
		if !errors.Is(err, ErrEmptyVehicleHistory) {
			t.Fatalf("expected ErrEmptyVehicleHistory, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAIClient(ctrl)
		uc := NewAIUseCase(client)

		client.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"predicted_issues":["desgaste de freio"],"recommended_maintenance":["revisar pastilhas"],"summary":"ok"}`), nil)

		res, err := uc.AnalyzeVehicleHistory(context.Background(), "troca de oleo 2024, pastilhas 2023", "ruido ao frear")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.PredictedIssues) != 1 || len(res.RecommendedMaintenance) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
