package devtools

import (
	"context"
	"os/exec"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) opGitPull(ctx context.Context, actx Context, inv *router.Invocation) error {
	pull := exec.CommandContext(ctx, "git", "pull", "--allow-unrelated-histories")
	output, err := pull.CombinedOutput()
	if err != nil {
		return actx.Reply(message.Neg(strings.TrimSpace(string(output)) + "\n" + err.Error()))
	}
	if len(output) == 0 {
		return actx.Reply(message.Neg("already up to date"))
	}
	return actx.Reply(message.Pos(string(output)))
}
