// Package insights produces a short management report over recent operations
// using Gemini. Failures degrade to fixed user-facing messages instead of
// errors: the panel is advisory and must never break the dashboard.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"slift/internal/domain/models"
)

const (
	modelName = "gemini-2.0-flash"

	// Fixed fallback texts shown verbatim in the UI.
	MsgMissingKey  = "API Key não encontrada. Por favor, configure a chave da API."
	MsgEmptyResult = "Não foi possível gerar insights no momento."
	MsgRemoteError = "Erro ao conectar com a inteligência artificial. Verifique sua chave de API."
)

// Generator builds analysis reports over the operational data.
type Generator struct {
	apiKey string
}

func NewGenerator(apiKey string) *Generator {
	return &Generator{apiKey: apiKey}
}

// snapshot is the JSON context handed to the model. Only the most recent
// trips go in, and staff is reduced to name/role, to keep the prompt small.
type snapshot struct {
	TotalTrips  int             `json:"totalTrips"`
	Settings    models.Settings `json:"settings"`
	RecentTrips []models.Trip   `json:"recentTrips"`
	Staff       []staffBrief    `json:"staff"`
}

type staffBrief struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Generate returns a Markdown report in Portuguese. It never returns an
// error alongside an empty string: on any failure the returned text is one
// of the Msg* fallbacks.
func (g *Generator) Generate(ctx context.Context, trips []models.Trip, staff []models.Staff, settings models.Settings) string {
	if strings.TrimSpace(g.apiKey) == "" {
		return MsgMissingKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return MsgRemoteError
	}
	defer client.Close()

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(trips, staff, settings)))
	if err != nil {
		return MsgRemoteError
	}

	text := extractText(resp)
	if text == "" {
		return MsgEmptyResult
	}
	return text
}

// BuildPrompt assembles the analyst instructions plus the JSON data context.
func BuildPrompt(trips []models.Trip, staff []models.Staff, settings models.Settings) string {
	recent := trips
	if len(recent) > 20 {
		recent = recent[:20]
	}

	var briefs []staffBrief
	for _, s := range staff {
		if !s.Active {
			continue
		}
		briefs = append(briefs, staffBrief{Name: s.Name, Role: s.Role.Label()})
	}

	data, _ := json.Marshal(snapshot{
		TotalTrips:  len(trips),
		Settings:    settings,
		RecentTrips: recent,
		Staff:       briefs,
	})

	return fmt.Sprintf(`Atue como um analista financeiro e gerente de logística para uma pequena empresa de transportes médicos.
Abaixo estão os dados JSON recentes das operações da empresa (viagens, equipe e configurações de custo).

Analise os dados e forneça um relatório curto, direto e profissional em Markdown.

Foque em:
1. Eficiência de custos (Gastos com finais de semana vs dias úteis).
2. Motoristas ou Ajudantes mais ativos.
3. Sugestões para economia baseadas no padrão de 'JobType' (Ressonância vs Tomografia).
4. Identifique se há algum gasto anomalamente alto.

Dados:
%s`, data)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
