package devtools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) opBotClose(ctx context.Context, actx Context, inv *router.Invocation) error {
	if err := actx.Reply(message.Pos("Bot is being closed...")); err != nil {
		return err
	}
	if err := d.host.Close(); err != nil {
		d.log.WithError(err).Warn("host close failed")
	}
	return nil
}

func (d *DevTools) opBotUptime(ctx context.Context, actx Context, inv *router.Invocation) error {
	uptime := int64(time.Since(d.started).Seconds())
	days := uptime / 86400
	hours := uptime % 86400 / 3600
	minutes := uptime % 3600 / 60
	seconds := uptime % 60
	return actx.Reply(message.Def(fmt.Sprintf("UPTIME: %dd %dh %dm %ds", days, hours, minutes, seconds)))
}

func (d *DevTools) opBotUpdateRequirements(ctx context.Context, actx Context, inv *router.Invocation) error {
	if d.requirementsPath == "" {
		return d.parser.Errorf("", "this instance has not been set up with a requirements path")
	}
	if err := actx.Reply(message.Pos("Updating requirements...")); err != nil {
		return err
	}
	update := exec.CommandContext(ctx, "go", "get", "-u", "./...")
	update.Dir = d.requirementsPath
	output, err := update.CombinedOutput()
	if err != nil {
		return actx.Reply(message.Neg(fmt.Sprintf("Requirements update failed: %v\n%s", err, output)))
	}
	if err := actx.Reply(message.Pos("Requirements updated.")); err != nil {
		return err
	}
	return actx.ReplyFile("log.txt", bytes.NewReader(output))
}

func (d *DevTools) opBotReloadModule(ctx context.Context, actx Context, inv *router.Invocation) error {
	eh, ok := d.host.(ExtensionHost)
	if !ok {
		return d.parser.Errorf("", "this instance is not set up for extension manipulation")
	}
	prefix := inv.Args[0]
	var errs []string
	total := 0
	for _, name := range eh.Loaded() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		total++
		if err := eh.Reload(name); err != nil {
			errs = append(errs, fmt.Sprintf("Error when reloading '%s': %v", name, err))
		}
	}
	if len(errs) == 0 {
		return actx.Reply(message.Pos(fmt.Sprintf("Reloaded %d of %d module(s).", total, total)))
	}
	return actx.Reply(message.Neg(fmt.Sprintf("Reloaded %d of %d module(s).\n\n%s",
		total-len(errs), total, strings.Join(errs, "\n"))))
}
