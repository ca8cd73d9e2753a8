package command

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Binding ties a key chord to a shell command template executed against the
// current selection. Templates may reference {namespace}, {kind} and
// {resource}.
type Binding struct {
	Key           string
	Description   string
	Template      string
	Applicability []string
	Confirm       bool
}

// Set holds bindings in declaration order with key-based lookup.
type Set struct {
	order []string
	byKey map[string]Binding
}

// NewSet builds an empty binding set.
func NewSet() *Set {
	return &Set{byKey: make(map[string]Binding)}
}

// Defaults returns the built-in binding set.
func Defaults() *Set {
	s := NewSet()
	s.Put(Binding{Key: "ctrl+y", Description: "yaml", Template: "kubectl -n {namespace} get {kind} {resource} -o yaml | batcat -l yaml --paging always"})
	s.Put(Binding{Key: "ctrl+d", Description: "describe", Template: "kubectl -n {namespace} describe {kind} {resource} | batcat -l yaml --paging always"})
	s.Put(Binding{Key: "ctrl+e", Description: "edit", Template: "kubectl -n {namespace} edit {kind} {resource}"})
	s.Put(Binding{Key: "ctrl+l", Description: "logs", Template: "kubectl -n {namespace} logs {resource} --all-containers | batcat -l log --paging always", Applicability: []string{"pods"}})
	s.Put(Binding{Key: "ctrl+x", Description: "exec", Template: "kubectl -n {namespace} exec -it {resource} -- sh", Applicability: []string{"pods"}})
	s.Put(Binding{Key: "delete", Description: "delete", Template: "kubectl -n {namespace} delete {kind} {resource}", Confirm: true})
	return s
}

// Put inserts or replaces a binding, preserving first-seen order.
func (s *Set) Put(b Binding) {
	if _, ok := s.byKey[b.Key]; !ok {
		s.order = append(s.order, b.Key)
	}
	s.byKey[b.Key] = b
}

// Lookup returns the binding for a key chord.
func (s *Set) Lookup(key string) (Binding, bool) {
	b, ok := s.byKey[key]
	return b, ok
}

// All returns the bindings in declaration order.
func (s *Set) All() []Binding {
	out := make([]Binding, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

type bindingFile struct {
	Binding []struct {
		Key         string   `toml:"key"`
		Description string   `toml:"description"`
		Command     string   `toml:"command"`
		AppliesTo   []string `toml:"applies_to"`
		Confirm     bool     `toml:"confirm"`
	} `toml:"binding"`
}

// Load merges bindings from a TOML file over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Set, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}
	var file bindingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse bindings %s: %w", path, err)
	}
	for _, raw := range file.Binding {
		b := Binding{
			Key:           raw.Key,
			Description:   raw.Description,
			Template:      raw.Command,
			Applicability: raw.AppliesTo,
			Confirm:       raw.Confirm,
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("bindings %s: %w", path, err)
		}
		s.Put(b)
	}
	return s, nil
}

var placeholderRe = regexp.MustCompile(`\{[^}]*\}`)

// Validate checks the binding has a key and a template using only known
// placeholders.
func (b Binding) Validate() error {
	if strings.TrimSpace(b.Key) == "" {
		return fmt.Errorf("binding missing key")
	}
	if strings.TrimSpace(b.Template) == "" {
		return fmt.Errorf("binding %q missing command", b.Key)
	}
	for _, ph := range placeholderRe.FindAllString(b.Template, -1) {
		switch ph {
		case "{namespace}", "{kind}", "{resource}":
		default:
			return fmt.Errorf("binding %q: unknown placeholder %s", b.Key, ph)
		}
	}
	return nil
}

// Applies reports whether the binding may run against the given kind.
func (b Binding) Applies(kind string) bool {
	if len(b.Applicability) == 0 {
		return true
	}
	for _, k := range b.Applicability {
		if k == kind {
			return true
		}
	}
	return false
}

// Resolve substitutes the selection into the command template.
func (b Binding) Resolve(namespace, kind, resource string) string {
	r := strings.NewReplacer(
		"{namespace}", namespace,
		"{kind}", kind,
		"{resource}", resource,
	)
	return r.Replace(b.Template)
}
