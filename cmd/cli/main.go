package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Interactive terminal client for the orchestrator API. Useful for
// poking at conversations without curl gymnastics.

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

type chatClient struct {
	baseURL   string
	sessionID string
	debug     bool
	http      *http.Client
}

type chatAPIResp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      struct {
		SessionID      string         `json:"session_id"`
		Response       string         `json:"response"`
		Classification map[string]any `json:"classification"`
		Debug          struct {
			Slots         map[string]string `json:"slots"`
			CurrentIntent string            `json:"current_intent"`
			NodePath      []string          `json:"node_path"`
		} `json:"debug"`
	} `json:"data"`
}

func (c *chatClient) send(message string) (*chatAPIResp, error) {
	body, _ := json.Marshal(map[string]string{
		"session_id": c.sessionID,
		"message":    message,
	})

	resp, err := c.http.Post(c.baseURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out chatAPIResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bad response body: %w", err)
	}
	return &out, nil
}

func (c *chatClient) repl() error {
	fmt.Printf("%sConectado a %s. Comandos: /debug, /new, /quit%s\n", colorGray, c.baseURL, colorReset)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%svocê>%s ", colorCyan, colorReset)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			fmt.Println("Até mais!")
			return nil
		case "/debug":
			c.debug = !c.debug
			fmt.Printf("%sdebug: %t%s\n", colorGray, c.debug, colorReset)
			continue
		case "/new":
			c.sessionID = ""
			fmt.Printf("%snova sessão%s\n", colorGray, colorReset)
			continue
		}

		out, err := c.send(line)
		if err != nil {
			fmt.Printf("%serro: %v%s\n", colorYellow, err, colorReset)
			continue
		}

		c.sessionID = out.Data.SessionID
		fmt.Printf("%saava>%s %s\n", colorGreen, colorReset, out.Data.Response)

		if c.debug {
			fmt.Printf("%s  session=%s path=%v intent=%q slots=%v%s\n",
				colorGray,
				out.Data.SessionID,
				out.Data.Debug.NodePath,
				out.Data.Debug.CurrentIntent,
				out.Data.Debug.Slots,
				colorReset,
			)
		}
	}
}

func main() {
	client := &chatClient{
		http: &http.Client{Timeout: 2 * time.Minute},
	}

	root := &cobra.Command{
		Use:   "a2a-cli",
		Short: "Interactive chat client for the A2A Orchestrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.repl()
		},
	}

	root.Flags().StringVar(&client.baseURL, "url", "http://localhost:8080", "orchestrator base URL")
	root.Flags().StringVar(&client.sessionID, "session", "", "resume an existing session id")
	root.Flags().BoolVar(&client.debug, "debug", false, "print routing details after each turn")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
