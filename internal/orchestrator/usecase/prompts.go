package usecase

import (
	"fmt"
	"strings"

	"a2a-orchestrator/internal/model"
)

// DefaultVoiceTone is the persona used by synthesis when no tone is
// configured.
const DefaultVoiceTone = "Você é a Aava, assistente virtual pessoal. " +
	"Fale de forma profissional, acolhedora e direta. " +
	"Use português brasileiro. Seja breve (2-4 frases). " +
	"Nunca invente dados — use apenas o que recebeu nos resultados estruturados."

const classificationPromptTemplate = `Você é o classificador de um assistente virtual. Analise a mensagem
do usuário e retorne APENAS um JSON válido. Sem markdown, sem explicações.

## Agentes disponíveis (LISTA EXAUSTIVA — não existe nenhum outro)
%s

## Slots já coletados nesta sessão
%s

## Intent acumulada (de turnos anteriores)
%s

## Regras de classificação

### 1. small_talk (PADRÃO)
Use quando a mensagem NÃO corresponde a NENHUM intent dos agentes acima.
Inclui: cumprimentos, conversa casual, perguntas gerais, qualquer pedido fora
do escopo dos agentes. Se intent for null, mode DEVE ser small_talk.

### 2. clarify
SOMENTE quando a mensagem indica uma intent dos agentes acima, mas faltam slots.
Obrigatório: intent preenchido e missing_slots com pelo menos 1 item.

### 3. self_serve / dispatch
Todos os slots preenchidos. Intent DEVE estar preenchido.

## Extração agressiva de slots
EXTRAIA O MÁXIMO DE SLOTS POSSÍVEL de uma única mensagem. Exemplos:
- "Parabéns pro João dia 15/03" -> extracted_slots: {"nome": "João", "data": "15/03"} -> dispatch
- "Clima em Curitiba" -> extracted_slots: {"cidade": "Curitiba"} -> dispatch
NÃO peça um slot por vez se o usuário já deu tudo. Combine extracted_slots com
os slots já coletados para decidir entre clarify (ainda falta algo) e
dispatch/self_serve (tudo preenchido).

## Referências ao histórico
Se o usuário referencia algo da conversa anterior ("aquele mesmo", "de novo"),
use o histórico para resolver a referência e extrair os slots.

## REGRAS INVIOLÁVEIS
- clarify/self_serve/dispatch EXIGEM intent válida. Sem intent, small_talk.
- clarify EXIGE missing_slots não vazio. Sem missing_slots, small_talk.
- Pedido fora do escopo dos agentes: small_talk. Sem exceção.

## Formato (JSON puro)
{
  "mode": "small_talk|clarify|self_serve|dispatch",
  "intent": "string ou null",
  "confidence": 0.0 a 1.0,
  "missing_slots": ["slot1"],
  "question_to_ask": "string ou null",
  "candidate_agents": ["agent-id"],
  "extracted_slots": {"slot_name": "valor"}
}`

const synthesisPromptTemplate = `%s

## Como você funciona

Você é a camada de linguagem do sistema. Recebe dados estruturados (JSON) de um
processamento interno e os transforma em uma mensagem natural para o usuário.
Você deve soar como uma pessoa conversando, não como um sistema executando comandos.

## Histórico da conversa
%s

## Dados estruturados do processamento atual
` + "```json\n%s\n```" + `

## Diretrizes de naturalidade

Conversa geral (source_node = small_talk):
- Converse como uma pessoa real. Responda o que foi perguntado.
- Na primeira interação (is_first_interaction=true): se apresente e mencione o que sabe fazer.
- Nas demais: apenas responda, sem repetir o que sabe fazer.

Coletando informações (source_node = clarify):
- Peça o que falta de forma conversacional, não como formulário.
- Se faltam 2 slots, pode pedir os dois de uma vez de forma natural.
- Não repita informações que o usuário já deu.

Apresentando resultados (source_node = dispatch/self_serve, status=ok):
- Apresente de forma limpa e direta. Use os dados do JSON, não invente.

Erros (status=error):
- Seja transparente mas não alarmista. Convide o usuário a tentar de novo.

Regra geral: leia o histórico e espelhe o tom da conversa.

Responda APENAS com a mensagem para o usuário.`

// buildAgentsDescription renders the registry catalog for the
// classification prompt.
func buildAgentsDescription(catalog []model.AgentCard) string {
	lines := make([]string, 0, len(catalog))
	for _, card := range catalog {
		lines = append(lines, fmt.Sprintf(
			"- intent='%s' → %s (id=%s, required_slots=%v, self_serve=%t): %s",
			card.Intent, card.Name, card.ID, card.RequiredSlots, card.SelfServe, card.Description,
		))
	}
	return strings.Join(lines, "\n")
}

// buildClassificationPrompt fills the classification system prompt.
func buildClassificationPrompt(catalog []model.AgentCard, slots map[string]string, currentIntent string) string {
	slotsDesc := "{}"
	if len(slots) > 0 {
		pairs := make([]string, 0, len(slots))
		for k, v := range slots {
			pairs = append(pairs, fmt.Sprintf("%s=%q", k, v))
		}
		slotsDesc = strings.Join(pairs, ", ")
	}

	intentDesc := currentIntent
	if intentDesc == "" {
		intentDesc = "nenhuma"
	}

	return fmt.Sprintf(classificationPromptTemplate,
		buildAgentsDescription(catalog), slotsDesc, intentDesc)
}

// buildSynthesisPrompt fills the synthesis system prompt.
func buildSynthesisPrompt(voiceTone, history, nodeResultJSON string) string {
	if history == "" {
		history = "(primeira mensagem)"
	}
	return fmt.Sprintf(synthesisPromptTemplate, voiceTone, history, nodeResultJSON)
}

// renderHistory formats history entries for prompt inclusion.
func renderHistory(messages []model.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		speaker := "Usuário"
		if m.Role == model.RoleAssistant {
			speaker = "Assistente"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, m.Content))
	}
	return strings.Join(lines, "\n")
}
