package devtools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
	"github.com/keshon/devtools/internal/tracker"
)

func (d *DevTools) opTrackersList(ctx context.Context, actx Context, inv *router.Invocation) error {
	body := strings.Join(d.trackers.Names(), ", ")
	if body == "" {
		body = "NONE"
	}
	return actx.Reply(message.Def(body))
}

func (d *DevTools) opTrackersGet(ctx context.Context, actx Context, inv *router.Invocation) error {
	name := inv.Args[0]
	if !d.trackers.Has(name) {
		return d.parser.Errorf("trackers", "tracker '%s' does not exist", name)
	}
	report := d.trackers.Get(name).Report()

	guilds := make([]int64, 0, len(report.Counts))
	for guildID := range report.Counts {
		guilds = append(guilds, guildID)
	}
	sort.Slice(guilds, func(i, j int) bool { return guilds[i] < guilds[j] })
	counts := make([]string, 0, len(guilds))
	for _, guildID := range guilds {
		counts = append(counts, fmt.Sprintf("    %d -> %d", guildID, report.Counts[guildID]))
	}

	body := fmt.Sprintf("CURRENT USERS\n    %s\n\nUSER HISTORY [%d]\n    %s\n\nCOUNTS\n%s",
		strings.Join(report.Active, "\n    "),
		tracker.HistoryLimit,
		strings.Join(report.History, "\n    "),
		strings.Join(counts, "\n"))
	return actx.Reply(message.Def(body))
}
