package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Standalone mock of the agents execution API. Runs next to the
// orchestrator in development so the dispatch path can be exercised
// without any real agent infrastructure.

type executeReq struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots"`
}

type executeResp struct {
	AgentID  string         `json:"agent_id"`
	Status   string         `json:"status"`
	Response string         `json:"response"`
	Data     map[string]any `json:"data"`
}

type agentHandler func(slots map[string]string) executeResp

var handlers = map[string]agentHandler{
	"agent-happy-birthday": func(slots map[string]string) executeResp {
		return executeResp{
			AgentID:  "agent-happy-birthday",
			Status:   "ok",
			Response: fmt.Sprintf("Feliz aniversário, %s! 🎂 Que seu dia %s seja incrível!", slots["nome"], slots["data"]),
			Data:     map[string]any{"nome": slots["nome"], "data": slots["data"]},
		}
	},
	"agent-clima": func(slots map[string]string) executeResp {
		return executeResp{
			AgentID:  "agent-clima",
			Status:   "ok",
			Response: fmt.Sprintf("Em %s: ensolarado, 25°C, sem previsão de chuva.", slots["cidade"]),
			Data: map[string]any{
				"cidade":      slots["cidade"],
				"condicao":    "ensolarado",
				"temperatura": 25,
			},
		}
	},
	"agent-traduzir": func(slots map[string]string) executeResp {
		return executeResp{
			AgentID:  "agent-traduzir",
			Status:   "ok",
			Response: fmt.Sprintf("Tradução de %q para %s: [tradução simulada]", slots["texto"], slots["idioma"]),
			Data:     map[string]any{"texto": slots["texto"], "idioma": slots["idioma"]},
		}
	},
	"agent-lembrete": func(slots map[string]string) executeResp {
		return executeResp{
			AgentID:  "agent-lembrete",
			Status:   "ok",
			Response: fmt.Sprintf("Lembrete criado: %s às %s.", slots["descricao"], slots["horario"]),
			Data:     map[string]any{"descricao": slots["descricao"], "horario": slots["horario"]},
		}
	},
}

func main() {
	port := flag.Int("port", 8001, "listen port")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.POST("/agents/:id/execute", func(c *gin.Context) {
		id := c.Param("id")

		var req executeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		h, ok := handlers[id]
		if !ok {
			// Generic echo so new agents can be exercised before a
			// dedicated handler exists.
			c.JSON(http.StatusOK, executeResp{
				AgentID:  id,
				Status:   "ok",
				Response: fmt.Sprintf("Agente %s executou a intent %q.", id, req.Intent),
				Data:     map[string]any{"intent": req.Intent, "slots": req.Slots},
			})
			return
		}

		c.JSON(http.StatusOK, h(req.Slots))
	})

	r.GET("/agents/registry", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"agents": []gin.H{
			{"id": "agent-happy-birthday", "name": "Agente Parabéns", "intents": []string{"happy_birthday"}},
			{"id": "agent-clima", "name": "Agente Clima", "intents": []string{"clima"}},
			{"id": "agent-traduzir", "name": "Agente Tradutor", "intents": []string{"traduzir"}},
			{"id": "agent-lembrete", "name": "Agente Lembrete", "intents": []string{"lembrete"}},
		}})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "mock-agents"})
	})

	fmt.Printf("Mock agents API listening on :%d\n", *port)
	if err := r.Run(fmt.Sprintf(":%d", *port)); err != nil {
		fmt.Println("server error:", err)
	}
}
