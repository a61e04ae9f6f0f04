package devtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/permissions"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) opGroupsList(ctx context.Context, actx Context, inv *router.Invocation) error {
	snapshot := d.groups.Snapshot()
	maxKey, maxVal := 0, 0
	for name, level := range snapshot {
		if len(name) > maxKey {
			maxKey = len(name)
		}
		if len(level) > maxVal {
			maxVal = len(level)
		}
	}
	lines := make([]string, 0, len(snapshot))
	for _, name := range d.groups.Names() {
		lines = append(lines, fmt.Sprintf("%-*s -> %*s", maxKey, name, maxVal, snapshot[name]))
	}
	return actx.Reply(message.Def(strings.Join(lines, "\n")))
}

func (d *DevTools) opGroupsEditAll(ctx context.Context, actx Context, inv *router.Invocation) error {
	level, err := permissions.ParseLevel(inv.Args[0])
	if err != nil {
		return d.parser.Errorf("control-groups", "invalid choice: '%s' (choose from %s)",
			inv.Args[0], levelChoices())
	}
	n, err := d.groups.SetAll(level)
	if err != nil {
		return err
	}
	d.persist()
	return actx.Reply(message.Pos(fmt.Sprintf("set %d control groups to %s", n, level)))
}

func (d *DevTools) opGroupsEdit(ctx context.Context, actx Context, inv *router.Invocation) error {
	name, raw := inv.Args[0], inv.Args[1]
	level, err := permissions.ParseLevel(raw)
	if err != nil {
		return d.parser.Errorf("control-groups", "invalid choice: '%s' (choose from %s)",
			raw, levelChoices())
	}
	if !d.groups.Has(name) {
		return d.parser.Errorf("control-groups", "group '%s' not found", name)
	}
	old := d.groups.Get(name)
	if err := d.groups.Set(name, level); err != nil {
		return err
	}
	d.persist()
	return actx.Reply(message.Pos(fmt.Sprintf("edited group '%s': value changed from '%s' to '%s'",
		name, old, level)))
}

func levelChoices() string {
	names := permissions.LevelNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
