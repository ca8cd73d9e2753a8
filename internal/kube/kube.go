package kube

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Runner executes a kubectl invocation and returns its stdout split into
// trimmed, non-empty lines. Tests substitute a scripted runner.
type Runner func(ctx context.Context, args ...string) ([]string, error)

// Client wraps the kubectl binary used to populate panel rows.
type Client struct {
	bin string
	run Runner
}

// NewClient builds a Client around the given kubectl binary path.
func NewClient(bin string) *Client {
	if strings.TrimSpace(bin) == "" {
		bin = "kubectl"
	}
	c := &Client{bin: bin}
	c.run = c.execRunner
	return c
}

// NewClientWithRunner builds a Client with a custom runner, for tests.
func NewClientWithRunner(bin string, run Runner) *Client {
	c := NewClient(bin)
	if run != nil {
		c.run = run
	}
	return c
}

func (c *Client) execRunner(ctx context.Context, args ...string) ([]string, error) {
	out, err := exec.CommandContext(ctx, c.bin, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.bin, strings.Join(args, " "), err)
	}
	return splitLines(string(out)), nil
}

// priorityKinds are listed first in the kinds panel, ahead of the sorted
// remainder reported by the cluster.
var priorityKinds = []string{
	"pods",
	"services",
	"deployments",
	"statefulsets",
	"daemonsets",
	"ingresses",
	"configmaps",
	"secrets",
	"persistentvolumes",
	"persistentvolumeclaims",
	"nodes",
	"storageclasses",
}

// Namespaces lists cluster namespaces with the current-context namespace
// floated to the front when one is set.
func (c *Client) Namespaces(ctx context.Context) ([]string, error) {
	all, err := c.run(ctx, "get", "ns", "--no-headers", "-o", "custom-columns=NAME:.metadata.name")
	if err != nil {
		return nil, err
	}
	current, _ := c.run(ctx, "config", "view", "--minify", "--output", "jsonpath={..namespace}")
	if len(current) == 0 || current[0] == "" {
		return all, nil
	}
	out := []string{current[0]}
	for _, ns := range all {
		if ns != current[0] {
			out = append(out, ns)
		}
	}
	return out, nil
}

// APIResources lists gettable resource kinds: the priority kinds first,
// then the remaining cluster kinds sorted and deduplicated.
func (c *Client) APIResources(ctx context.Context) ([]string, error) {
	lines, err := c.run(ctx, "api-resources", "--no-headers", "--verbs", "get")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(priorityKinds))
	out := make([]string, 0, len(lines)+len(priorityKinds))
	for _, kind := range priorityKinds {
		out = append(out, kind)
		seen[kind] = struct{}{}
	}
	rest := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		kind := fields[0]
		if _, ok := seen[kind]; ok {
			continue
		}
		seen[kind] = struct{}{}
		rest = append(rest, kind)
	}
	sort.Strings(rest)
	return append(out, rest...), nil
}

// Resources lists the names of resources of the given kind in the given
// namespace. The first whitespace-separated field of each line is the name.
func (c *Client) Resources(ctx context.Context, namespace, kind string) ([]string, error) {
	if namespace == "" || kind == "" {
		return nil, nil
	}
	lines, err := c.run(ctx, "-n", namespace, "get", kind, "--no-headers", "--ignore-not-found")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, fields[0])
	}
	return out, nil
}

// Contexts lists the configured kubeconfig context names.
func (c *Client) Contexts(ctx context.Context) ([]string, error) {
	return c.run(ctx, "config", "get-contexts", "-o", "name")
}

// SwitchContext makes the named context current.
func (c *Client) SwitchContext(ctx context.Context, name string) error {
	_, err := c.run(ctx, "config", "use-context", name)
	return err
}

func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
