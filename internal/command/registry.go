package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

// ErrUnknownCommand is returned when a command dispatch is attempted for an
// unregistered key.
var ErrUnknownCommand = errors.New("unknown command")

// Registry stores command handlers keyed by their canonical names.
type Registry struct {
	mu        sync.RWMutex
	handlers  map[string]Command
	aliasKeys map[string]string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:  make(map[string]Command),
		aliasKeys: make(map[string]string),
	}
}

// Register adds a command handler to the registry. The handler name is stored
// in lowercase form to provide case-insensitive lookups.
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}

	name := strings.ToLower(handler.Name())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
}

// RegisterAlias maps an alternate key to an already canonical command name.
func (r *Registry) RegisterAlias(alias, target string) {
	alias = strings.ToLower(alias)
	target = strings.ToLower(target)
	if alias == "" || target == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliasKeys[alias] = target
}

// Execute runs the handler registered for the provided key. Keys are compared in
// lowercase to maintain parity with Register behaviour.
func (r *Registry) Execute(ctx context.Context, session *domain.Session, key string, args []string) error {
	if r == nil {
		return fmt.Errorf("command registry is nil")
	}

	handler := r.getHandler(key)
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, key)
	}

	return handler.Execute(ctx, session, args)
}

// List returns the registered handlers sorted by name.
func (r *Registry) List() []Command {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]Command, 0, len(r.handlers))
	for _, handler := range r.handlers {
		commands = append(commands, handler)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})
	return commands
}

// Count returns the number of registered command handlers.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func (r *Registry) getHandler(key string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if key == "" {
		return nil
	}

	key = strings.ToLower(key)
	if handler, ok := r.handlers[key]; ok {
		return handler
	}
	if target, ok := r.aliasKeys[key]; ok {
		return r.handlers[target]
	}
	return nil
}
