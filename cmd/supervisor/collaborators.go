package main

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"strings"
	"time"
)

// Production implementations of the collaborator hooks the builtin tools
// expose. Each returns a plain function so the tool layer stays free of
// process details.

const prCreateTimeout = 60 * time.Second

// allocatePort reserves an ephemeral TCP port by binding and releasing
// it. The port is free at return time; the requesting service must bind
// promptly.
func allocatePort(_ context.Context, project, serviceName string) (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("allocating port for %s/%s: %w", project, serviceName, err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		return 0, fmt.Errorf("releasing probe listener: %w", err)
	}
	return port, nil
}

// newDNSSync returns a sync hook that publishes hostname mappings under
// the given base domain, optionally running an external sync command
// (hostname and port appended as arguments).
func newDNSSync(domain, syncCmd string) func(ctx context.Context, project, hostname string, port int) (string, error) {
	return func(ctx context.Context, project, hostname string, port int) (string, error) {
		if syncCmd != "" {
			parts := strings.Fields(syncCmd)
			args := append(parts[1:], hostname, fmt.Sprintf("%d", port))
			out, err := exec.CommandContext(ctx, parts[0], args...).CombinedOutput()
			if err != nil {
				return "", fmt.Errorf("dns sync for %s/%s: %s", project, hostname, strings.TrimSpace(string(out)))
			}
		}
		return fmt.Sprintf("https://%s.%s", hostname, domain), nil
	}
}

// createPullRequest opens a PR from the project working tree using the
// gh CLI. Returns the PR URL gh prints on success.
func createPullRequest(ctx context.Context, projectPath, title, body string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, prCreateTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "gh", "pr", "create", "--title", title, "--body", body)
	cmd.Dir = projectPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		reason := strings.TrimSpace(string(out))
		if reason == "" {
			reason = err.Error()
		}
		return "", fmt.Errorf("gh pr create: %s", reason)
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "https://") {
			return line, nil
		}
	}
	return "", fmt.Errorf("gh pr create produced no URL: %s", strings.TrimSpace(string(out)))
}
