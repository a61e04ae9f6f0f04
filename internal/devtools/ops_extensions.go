package devtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) extensionHost() (ExtensionHost, *router.ParseError) {
	eh, ok := d.host.(ExtensionHost)
	if !ok {
		return nil, d.parser.Errorf("extensions", "this instance is not set up for extension manipulation")
	}
	return eh, nil
}

func (d *DevTools) opExtensionsList(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	names, err := eh.Available()
	if err != nil {
		return err
	}
	body := strings.Join(names, ", ")
	if body == "" {
		body = "NONE"
	}
	return actx.Reply(message.Def(body))
}

func (d *DevTools) opExtensionsReloadAll(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	loaded := eh.Loaded()
	if len(loaded) == 0 {
		return d.parser.Errorf("extensions", "there are no loaded extensions to reload")
	}
	succeeded := 0
	for _, name := range loaded {
		if err := eh.Reload(name); err == nil {
			succeeded++
		}
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extensions reloaded: %d of %d", succeeded, len(loaded))))
}

func (d *DevTools) opExtensionsReload(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	name := inv.Args[0]
	if !contains(eh.Loaded(), name) {
		return d.parser.Errorf("extensions",
			"the extension '%s' is not currently loaded and thus cannot be reloaded", name)
	}
	if err := eh.Reload(name); err != nil {
		return d.parser.Errorf("extensions",
			"an error occurred in the extension reloading process: %v", err)
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extension '%s' has been reloaded", name)))
}

func (d *DevTools) opExtensionsUnloadAll(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	loaded := eh.Loaded()
	if len(loaded) == 0 {
		return d.parser.Errorf("extensions", "there are no loaded extensions to unload")
	}
	succeeded := 0
	for _, name := range loaded {
		if err := eh.Unload(name); err == nil {
			succeeded++
		}
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extensions unloaded: %d of %d", succeeded, len(loaded))))
}

func (d *DevTools) opExtensionsUnload(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	name := inv.Args[0]
	if !contains(eh.Loaded(), name) {
		return d.parser.Errorf("extensions",
			"the extension '%s' is not currently loaded and thus cannot be unloaded", name)
	}
	if err := eh.Unload(name); err != nil {
		return d.parser.Errorf("extensions",
			"an error occurred in the extension unloading process: %v", err)
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extension '%s' has been unloaded", name)))
}

func (d *DevTools) opExtensionsLoadAll(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	available, err := eh.Available()
	if err != nil {
		return err
	}
	if len(available) == 0 {
		return d.parser.Errorf("extensions", "no extensions were found")
	}
	succeeded := 0
	for _, name := range available {
		if err := eh.Load(name); err == nil {
			succeeded++
		}
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extensions loaded: %d of %d", succeeded, len(available))))
}

func (d *DevTools) opExtensionsLoad(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, perr := d.extensionHost()
	if perr != nil {
		return perr
	}
	name := inv.Args[0]
	available, err := eh.Available()
	if err != nil {
		return err
	}
	if !contains(available, name) {
		return d.parser.Errorf("extensions", "the extension '%s' does not exist", name)
	}
	if err := eh.Load(name); err != nil {
		return d.parser.Errorf("extensions",
			"an error occurred in the extension loading process: %v", err)
	}
	return actx.Reply(message.Pos(fmt.Sprintf("extension '%s' has been loaded", name)))
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
