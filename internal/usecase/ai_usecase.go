package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"oficina_xyz/internal/domain/entities"
	"oficina_xyz/internal/usecase/interfaces"
	"oficina_xyz/pkg/logger"
)

var (
	ErrSymptomsTooShort     = errors.New("symptoms description too short")
	ErrEmptyVehicleHistory  = errors.New("vehicle history is empty")
	ErrEmptyOrderContent    = errors.New("order has no services or parts to summarize")
	ErrAIServiceUnavailable = errors.New("ai service unavailable")
)

// minSymptomsLen rejects inputs too short to produce a useful suggestion.
const minSymptomsLen = 10

const assistantSystemPrompt = "Voce e um assistente tecnico de oficina mecanica. " +
	"Responda somente com um objeto JSON valido no formato pedido, sem texto adicional."

type DiagnosisResult struct {
	Diagnosis          string   `json:"diagnosis"`
	ConfidenceLevel    float64  `json:"confidence_level"`
	RecommendedActions []string `json:"recommended_actions"`
}

type OrderSummaryInput struct {
	Services     []entities.OrderService
	Parts        []entities.OrderPart
	TotalCost    float64
	VehicleMake  string
	VehicleModel string
	VehicleYear  int
}

type OrderSummaryResult struct {
	Summary string `json:"summary"`
}

type VehicleHistoryResult struct {
	PredictedIssues        []string `json:"predicted_issues"`
	RecommendedMaintenance []string `json:"recommended_maintenance"`
	Summary                string   `json:"summary"`
}

// IAIUseCase wraps the external text-generation service behind fixed prompt
// templates and fixed response schemas.
//
// Inputs are validated before anything leaves the process; a validation error
// never triggers an external call. Service and parse failures collapse into
// ErrAIServiceUnavailable so callers always get a recoverable message.

type IAIUseCase interface {
	Diagnose(ctx context.Context, symptoms, vehicleHistory string) (DiagnosisResult, error)
	SummarizeOrder(ctx context.Context, in OrderSummaryInput) (OrderSummaryResult, error)
	AnalyzeVehicleHistory(ctx context.Context, history, currentSymptoms string) (VehicleHistoryResult, error)
}

type AIUseCase struct {
	client interfaces.IAIClient
}

var _ IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(client interfaces.IAIClient) *AIUseCase {
	return &AIUseCase{client: client}
}

func (u *AIUseCase) Diagnose(ctx context.Context, symptoms, vehicleHistory string) (DiagnosisResult, error) {
	symptoms = strings.TrimSpace(symptoms)
	if len(symptoms) < minSymptomsLen {
		return DiagnosisResult{}, ErrSymptomsTooShort
	}

	var prompt strings.Builder
	prompt.WriteString("Sintomas relatados pelo cliente:\n")
	prompt.WriteString(symptoms)
	if h := strings.TrimSpace(vehicleHistory); h != "" {
		prompt.WriteString("\n\nHistorico do veiculo:\n")
		prompt.WriteString(h)
	}
	prompt.WriteString("\n\nResponda com JSON no formato: " +
		`{"diagnosis": string, "confidence_level": number entre 0 e 1, "recommended_actions": [string]}`)

	var out DiagnosisResult
	if err := u.generate(ctx, prompt.String(), &out); err != nil {
		return DiagnosisResult{}, err
	}
	if out.ConfidenceLevel < 0 {
		out.ConfidenceLevel = 0
	}
	if out.ConfidenceLevel > 1 {
		out.ConfidenceLevel = 1
	}
	return out, nil
}

func (u *AIUseCase) SummarizeOrder(ctx context.Context, in OrderSummaryInput) (OrderSummaryResult, error) {
	if len(in.Services) == 0 && len(in.Parts) == 0 {
		return OrderSummaryResult{}, ErrEmptyOrderContent
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Veiculo: %s %s %d\n", in.VehicleMake, in.VehicleModel, in.VehicleYear)
	prompt.WriteString("Servicos executados:\n")
	for _, s := range in.Services {
		fmt.Fprintf(&prompt, "- %s (qtd %d)\n", s.Description, s.Quantity)
	}
	prompt.WriteString("Pecas substituidas:\n")
	for _, p := range in.Parts {
		fmt.Fprintf(&prompt, "- %s (qtd %d)\n", p.Name, p.Quantity)
	}
	fmt.Fprintf(&prompt, "Valor total: %.2f\n", in.TotalCost)
	prompt.WriteString("\nEscreva um resumo curto e claro para o cliente. " +
		`Responda com JSON no formato: {"summary": string}`)

	var out OrderSummaryResult
	if err := u.generate(ctx, prompt.String(), &out); err != nil {
		return OrderSummaryResult{}, err
	}
	return out, nil
}

func (u *AIUseCase) AnalyzeVehicleHistory(ctx context.Context, history, currentSymptoms string) (VehicleHistoryResult, error) {
	history = strings.TrimSpace(history)
	if history == "" {
		return VehicleHistoryResult{}, ErrEmptyVehicleHistory
	}

	var prompt strings.Builder
	prompt.WriteString("Historico de manutencao do veiculo:\n")
	prompt.WriteString(history)
	if s := strings.TrimSpace(currentSymptoms); s != "" {
		prompt.WriteString("\n\nSintomas atuais:\n")
		prompt.WriteString(s)
	}
	prompt.WriteString("\n\nResponda com JSON no formato: " +
		`{"predicted_issues": [string], "recommended_maintenance": [string], "summary": string}`)

	var out VehicleHistoryResult
	if err := u.generate(ctx, prompt.String(), &out); err != nil {
		return VehicleHistoryResult{}, err
	}
	return out, nil
}

// generate runs one request against the external service and decodes the
// fixed-schema reply. Any failure past validation maps to the single generic
// recoverable error; the cause stays in the logs.
func (u *AIUseCase) generate(ctx context.Context, userPrompt string, out any) error {
	if u.client == nil {
		return ErrAIServiceUnavailable
	}

	raw, err := u.client.GenerateJSON(ctx, assistantSystemPrompt, userPrompt)
	if err != nil {
		logger.Error().Err(err).Msg("ai generation failed")
		return ErrAIServiceUnavailable
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Error().Err(err).Msg("ai response did not match requested schema")
		return ErrAIServiceUnavailable
	}
	return nil
}
