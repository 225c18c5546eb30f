// Package binder maintains a registry of named actions bound to keys. The
// registry dispatches action callbacks from per-frame key state, draws an
// editor for rebinding keys and persists bindings to a small binary file.
//
// A Registry is not safe for concurrent use. It is meant to be driven from
// the goroutine that owns the UI frame loop.
package binder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/logging"
	"golang.org/x/exp/maps"
)

// ErrInvalidAction is returned when an action cannot be registered at all,
// regardless of what is already registered.
var ErrInvalidAction = errors.New("invalid action")

// Action is a named behaviour triggered by a key.
type Action struct {
	// Name identifies the action and is shown in the editor. It must be
	// unique and non-empty.
	Name string
	// Key triggers the action.
	Key key.Key
	// OnPress is called when Key is pressed.
	OnPress func()
	// OnRelease is called when Key is released.
	OnRelease func()
	// RepeatOnHold calls OnPress repeatedly, at the platform's repeat rate,
	// while Key is held.
	//
	// Terminals do not report keyboard key releases, so a keyboard key is
	// held until no press of it arrives within the hold timeout. Pressing it
	// again sooner counts as a repeat: without RepeatOnHold a quick double
	// tap calls OnPress once.
	RepeatOnHold bool
}

func (a Action) validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAction)
	}
	if strings.ContainsRune(a.Name, 0) {
		return fmt.Errorf("%w: name %q contains a NUL byte", ErrInvalidAction, a.Name)
	}
	if a.OnPress == nil && a.OnRelease == nil {
		return fmt.Errorf("%w: %s has no effect: no callback defined", ErrInvalidAction, a.Name)
	}
	return nil
}

// entry is a registered action.
type entry struct {
	Action

	// id is generated upon registration and identifies the action in the
	// editor for as long as it stays registered.
	id uuid.UUID
}

// Registry maps action names to actions.
type Registry struct {
	actions map[string]*entry
	// rebinding is the id of the action whose key is being captured;
	// uuid.Nil when no capture is in progress.
	rebinding uuid.UUID
	abortKeys []key.Key
	logger    logging.Interface
}

type Options struct {
	// Logger defaults to logging.Discard.
	Logger logging.Interface
	// AbortKeys cancel an in-progress key capture. They are reserved: they
	// can never be captured by the editor. Nor can the left mouse button,
	// which is used to click the editor's buttons. Defaults to
	// DefaultAbortKeys.
	AbortKeys []key.Key
}

// DefaultAbortKeys is the default set of keys that cancel a key capture.
var DefaultAbortKeys = []key.Key{key.MouseLeft, key.Escape}

func New(opts Options) *Registry {
	r := &Registry{
		actions:   make(map[string]*entry),
		abortKeys: slices.Clone(opts.AbortKeys),
		logger:    opts.Logger,
	}
	if len(r.abortKeys) == 0 {
		r.abortKeys = slices.Clone(DefaultAbortKeys)
	}
	if r.logger == nil {
		r.logger = logging.Discard
	}
	return r
}

type addOptions struct {
	keepExisting bool
}

// AddOption modifies the behaviour of AddAction and AddActions.
type AddOption func(*addOptions)

// KeepExisting leaves an already registered action with the same name
// untouched, and reports failure, rather than replacing it.
func KeepExisting() AddOption {
	return func(opts *addOptions) {
		opts.keepExisting = true
	}
}

// AddAction registers an action, replacing any action with the same name
// unless KeepExisting is given. It returns an error wrapping ErrInvalidAction
// if the action is invalid, and false if an existing action was kept.
func (r *Registry) AddAction(action Action, opts ...AddOption) (bool, error) {
	if err := action.validate(); err != nil {
		return false, err
	}
	var options addOptions
	for _, fn := range opts {
		fn(&options)
	}
	if existing, ok := r.actions[action.Name]; ok {
		if options.keepExisting {
			return false, nil
		}
		if existing.id == r.rebinding {
			r.rebinding = uuid.Nil
		}
	}
	r.actions[action.Name] = &entry{Action: action, id: uuid.New()}
	return true, nil
}

// AddActions adds each action in turn, stopping at the first action that
// cannot be added. Actions added before the failure remain registered.
func (r *Registry) AddActions(actions []Action, opts ...AddOption) (bool, error) {
	for _, action := range actions {
		ok, err := r.AddAction(action, opts...)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// RemoveAction removes the named action, returning false if there is no such
// action.
func (r *Registry) RemoveAction(name string) bool {
	existing, ok := r.actions[name]
	if !ok {
		return false
	}
	if existing.id == r.rebinding {
		r.rebinding = uuid.Nil
	}
	delete(r.actions, name)
	return true
}

// Reset removes all actions and cancels any key capture.
func (r *Registry) Reset() {
	clear(r.actions)
	r.rebinding = uuid.Nil
}

// Action returns a copy of the named action.
func (r *Registry) Action(name string) (Action, bool) {
	e, ok := r.actions[name]
	if !ok {
		return Action{}, false
	}
	return e.Action, true
}

// Actions returns copies of all actions, sorted by name.
func (r *Registry) Actions() []Action {
	actions := make([]Action, 0, len(r.actions))
	for _, name := range r.names() {
		actions = append(actions, r.actions[name].Action)
	}
	return actions
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// Rebinding returns the name of the action whose key is currently being
// captured in the editor.
func (r *Registry) Rebinding() (string, bool) {
	if r.rebinding == uuid.Nil {
		return "", false
	}
	for _, e := range r.actions {
		if e.id == r.rebinding {
			return e.Name, true
		}
	}
	return "", false
}

// names returns the action names in iteration order.
func (r *Registry) names() []string {
	names := maps.Keys(r.actions)
	slices.Sort(names)
	return names
}
