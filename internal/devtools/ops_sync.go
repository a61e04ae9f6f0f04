package devtools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) treeHost() (TreeHost, *router.ParseError) {
	th, ok := d.host.(TreeHost)
	if !ok {
		return nil, d.parser.Errorf("sync", "this instance is not set up for command tree syncing")
	}
	return th, nil
}

// eachGuild runs fn per guild token, counting successes. Unparsable tokens
// count as failures rather than aborting the batch.
func eachGuild(guilds []string, fn func(guildID int64) error) int {
	synced := 0
	for _, raw := range guilds {
		guildID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if fn(guildID) == nil {
			synced++
		}
	}
	return synced
}

func (d *DevTools) opSyncGuilds(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	synced := eachGuild(inv.Args, func(guildID int64) error {
		_, err := th.SyncGuild(guildID)
		return err
	})
	return actx.Reply(message.Pos(fmt.Sprintf("synced command tree to %d of %d guilds",
		synced, len(inv.Args))))
}

func (d *DevTools) opSyncCurrent(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	n, err := th.SyncGuild(actx.GuildID())
	if err != nil {
		return err
	}
	return actx.Reply(message.Pos(fmt.Sprintf("synced %d commands to the current guild", n)))
}

func (d *DevTools) opSyncGlobal(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	n, err := th.SyncGlobal()
	if err != nil {
		return err
	}
	return actx.Reply(message.Pos(fmt.Sprintf("synced %d commands globally", n)))
}

func (d *DevTools) opSyncCopyGlobalCurrent(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	if err := th.CopyGlobalTo(actx.GuildID()); err != nil {
		return err
	}
	return actx.Reply(message.Pos("copied global commands to current guild in the local command tree"))
}

func (d *DevTools) opSyncCopyGlobal(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	synced := eachGuild(inv.Args, th.CopyGlobalTo)
	return actx.Reply(message.Pos(fmt.Sprintf(
		"copied global commands to %d of %d guilds in the local command tree",
		synced, len(inv.Args))))
}

func (d *DevTools) opSyncClearGlobal(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	if err := th.ClearGlobal(); err != nil {
		return err
	}
	return actx.Reply(message.Pos("cleared all global commands from the local command tree"))
}

func (d *DevTools) opSyncClearCurrent(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	if err := th.ClearGuild(actx.GuildID()); err != nil {
		return err
	}
	return actx.Reply(message.Pos("cleared the local command tree of the current guild"))
}

func (d *DevTools) opSyncClearGuilds(ctx context.Context, actx Context, inv *router.Invocation) error {
	th, perr := d.treeHost()
	if perr != nil {
		return perr
	}
	synced := eachGuild(inv.Args, th.ClearGuild)
	return actx.Reply(message.Pos(fmt.Sprintf("cleared the local command tree for %d of %d guilds",
		synced, len(inv.Args))))
}
