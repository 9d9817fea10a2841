// Command client is a stdio smoke-test client. It spawns the server binary,
// performs the initialize handshake, lists the tool catalog and calls one
// tool, printing every frame it exchanges.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/eddyv73/github-mcp/pkg/jsonrpc"
)

func main() {
	serverPath := os.Getenv("SERVER_PATH")
	if serverPath == "" {
		serverPath = "./github-mcp"
	}

	if _, err := os.Stat(serverPath); os.IsNotExist(err) {
		fmt.Printf("Server binary not found at %s\n", serverPath)
		return
	}

	fmt.Printf("Using server: %s\n", serverPath)

	cmd := exec.Command(serverPath, "-t", "stdio")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Printf("Error creating stdin pipe: %v\n", err)
		return
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		fmt.Printf("Error creating stdout pipe: %v\n", err)
		return
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		fmt.Printf("Error creating stderr pipe: %v\n", err)
		return
	}

	// Mirror server logs so transport problems are visible
	go func() {
		stderrReader := bufio.NewReader(stderr)
		for {
			line, err := stderrReader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					fmt.Printf("Stderr read error: %v\n", err)
				}
				return
			}
			fmt.Printf("Server stderr: %s", line)
		}
	}()

	if err := cmd.Start(); err != nil {
		fmt.Printf("Error starting server: %v\n", err)
		return
	}
	defer cmd.Process.Kill()

	reader := bufio.NewReader(stdout)

	initParams, _ := json.Marshal(map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"clientInfo": map[string]string{
			"name":    "github-mcp-test-client",
			"version": "0.1.0",
		},
		"capabilities": map[string]interface{}{},
	})
	if _, err := roundTrip(stdin, reader, &jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		ID:      "init-1",
		Method:  "initialize",
		Params:  initParams,
	}); err != nil {
		fmt.Printf("initialize failed: %v\n", err)
		return
	}

	if _, err := roundTrip(stdin, reader, &jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		ID:      "tools-1",
		Method:  "tools/list",
	}); err != nil {
		fmt.Printf("tools/list failed: %v\n", err)
		return
	}

	callParams, _ := json.Marshal(map[string]interface{}{
		"name": "gh_repo",
		"arguments": map[string]interface{}{
			"action": "list",
		},
	})
	resp, err := roundTrip(stdin, reader, &jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		ID:      "call-1",
		Method:  "tools/call",
		Params:  callParams,
	})
	if err != nil {
		fmt.Printf("tools/call failed: %v\n", err)
		return
	}
	if resp.Error != nil {
		fmt.Printf("Tool returned error %d: %s\n", resp.Error.Code, resp.Error.Message)
		return
	}

	fmt.Println("\nTest completed successfully!")
}

// roundTrip writes one request frame and reads one response frame.
func roundTrip(stdin io.Writer, reader *bufio.Reader, req *jsonrpc.Request) (*jsonrpc.Response, error) {
	requestJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	fmt.Printf("Sending request: %s\n", string(requestJSON))
	if _, err := io.WriteString(stdin, string(requestJSON)+"\n"); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	responseJSON, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp jsonrpc.Response
	if err := json.Unmarshal([]byte(responseJSON), &resp); err != nil {
		return nil, fmt.Errorf("parse response: %w (raw: %s)", err, responseJSON)
	}

	prettyJSON, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Printf("Received response:\n%s\n\n", string(prettyJSON))
	return &resp, nil
}
