// Package devtools is the administrative command facade: it wraps bot
// commands with access control and usage tracking, and routes the delegate
// command line to its operations.
package devtools

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/keshon/devtools/internal/permissions"
	"github.com/keshon/devtools/internal/router"
	"github.com/keshon/devtools/internal/storage"
	"github.com/keshon/devtools/internal/tracker"
	"github.com/keshon/devtools/pkg/cmd"
)

// Config carries everything a facade instance needs at construction.
type Config struct {
	// Prog is the program name used in delegate diagnostics.
	Prog string

	Moderators     []int64
	Administrators []int64
	Developers     []int64

	GroupDefaults     map[string]permissions.Level
	WhitelistDefaults map[string][]int64
	BlacklistDefaults map[string][]int64
	Trackers          []string

	// FilesPath confines the files operations; empty disables them.
	FilesPath string
	// RequirementsPath is the module directory --update-requirements
	// refreshes; empty disables the operation.
	RequirementsPath string

	// Registry is the live command registry the commands operation lists and
	// AddCommand registers into.
	Registry *cmd.Registry
	// Store enables durable access-control state; nil keeps it in memory.
	Store *storage.Store

	Log *logrus.Logger
}

// DevTools owns the access-control containers, the usage trackers and the
// delegate router for one host.
type DevTools struct {
	prog string
	host Host
	log  *logrus.Logger

	groups     *permissions.ControlGroups
	whitelists *permissions.UserGroups
	blacklists *permissions.UserGroups
	trackers   *tracker.Groups

	registry *cmd.Registry
	parser   *router.Parser
	store    *storage.Store

	filesPath        string
	requirementsPath string

	started time.Time

	// Delegate calls are rate limited per invoker, so one admin's burst
	// never locks out another.
	limitMu  sync.Mutex
	limiters map[int64]*rate.Limiter
	limit    rate.Limit
	burst    int

	ops map[string]opFunc
}

// New builds a facade for host and attaches it to the instance registry.
// Stored state, when a store is supplied, takes precedence over the
// configured defaults. Invalid defaults (bad name charset, bad level) fail
// construction on the first violation.
func New(host Host, cfg Config) (*DevTools, error) {
	groupDefaults := make(map[string]permissions.Level, len(cfg.GroupDefaults))
	for name, level := range cfg.GroupDefaults {
		groupDefaults[name] = level
	}
	whitelistDefaults := cfg.WhitelistDefaults
	blacklistDefaults := cfg.BlacklistDefaults

	if cfg.Store != nil {
		state, err := cfg.Store.Load()
		if err != nil {
			return nil, fmt.Errorf("load stored state: %w", err)
		}
		if state != nil {
			for name, raw := range state.Groups {
				level, err := permissions.ParseLevel(raw)
				if err != nil {
					return nil, fmt.Errorf("stored group %q: %w", name, err)
				}
				groupDefaults[name] = level
			}
			whitelistDefaults = state.Whitelists
			blacklistDefaults = state.Blacklists
		}
	}

	groups, err := permissions.NewControlGroups(cfg.Moderators, cfg.Administrators, cfg.Developers, groupDefaults)
	if err != nil {
		return nil, err
	}
	whitelists, err := permissions.NewUserGroups(whitelistDefaults)
	if err != nil {
		return nil, err
	}
	blacklists, err := permissions.NewUserGroups(blacklistDefaults)
	if err != nil {
		return nil, err
	}

	logger := cfg.Log
	if logger == nil {
		logger = logrus.New()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = cmd.NewRegistry()
	}

	d := &DevTools{
		prog:             cfg.Prog,
		host:             host,
		log:              logger,
		groups:           groups,
		whitelists:       whitelists,
		blacklists:       blacklists,
		trackers:         tracker.NewGroups(cfg.Trackers...),
		registry:         registry,
		parser:           router.New(cfg.Prog),
		store:            cfg.Store,
		filesPath:        cfg.FilesPath,
		requirementsPath: cfg.RequirementsPath,
		started:          time.Now(),
		limiters:         make(map[int64]*rate.Limiter),
		limit:            rate.Every(time.Second),
		burst:            3,
	}
	d.ops = d.buildOps()

	if err := attach(host, d); err != nil {
		return nil, err
	}
	return d, nil
}

// allow consumes one delegate token from userID's limiter, creating it on
// first use.
func (d *DevTools) allow(userID int64) bool {
	d.limitMu.Lock()
	limiter, ok := d.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(d.limit, d.burst)
		d.limiters[userID] = limiter
	}
	d.limitMu.Unlock()
	return limiter.Allow()
}

// Registry returns the live command registry the facade operates on.
func (d *DevTools) Registry() *cmd.Registry {
	return d.registry
}

// persist writes the current access-control state through the store, when one
// is attached. Failures are logged, never surfaced to the invoker: the
// in-memory mutation already happened.
func (d *DevTools) persist() {
	if d.store == nil {
		return
	}
	snapshot := d.groups.Snapshot()
	state := &storage.State{
		Groups:     make(map[string]string, len(snapshot)),
		Whitelists: d.whitelists.Snapshot(),
		Blacklists: d.blacklists.Snapshot(),
	}
	for name, level := range snapshot {
		state.Groups[name] = string(level)
	}
	if err := d.store.Save(state); err != nil {
		d.log.WithError(err).Warn("failed to persist access-control state")
	}
}

// Instance registry. The facade is looked up through the host it was
// constructed for, instead of living as a hidden attribute on it.
var (
	instMu    sync.Mutex
	instances = make(map[Host]*DevTools)
)

func attach(host Host, d *DevTools) error {
	instMu.Lock()
	defer instMu.Unlock()
	if _, ok := instances[host]; ok {
		return fmt.Errorf("a devtools instance is already attached to this host")
	}
	instances[host] = d
	return nil
}

// For returns the facade attached to host.
func For(host Host) (*DevTools, error) {
	instMu.Lock()
	defer instMu.Unlock()
	d, ok := instances[host]
	if !ok {
		return nil, fmt.Errorf("no devtools instance has been initialized with this host")
	}
	return d, nil
}

// Detach removes the facade attached to host, if any.
func Detach(host Host) {
	instMu.Lock()
	defer instMu.Unlock()
	delete(instances, host)
}
