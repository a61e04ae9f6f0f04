package commands

import (
	"context"
	"strings"

	"github.com/keshon/devtools/internal/devtools"
	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/pkg/cmd"
)

// Echo repeats the invocation arguments back.
type Echo struct{}

func (Echo) Name() string        { return "echo" }
func (Echo) Description() string { return "repeat the given text" }

func (Echo) Run(ctx context.Context, inv *cmd.Invocation) error {
	actx, ok := inv.Data.(devtools.Context)
	if !ok {
		return nil
	}
	body := strings.Join(inv.Args, " ")
	if body == "" {
		body = "..."
	}
	return actx.Reply(message.Def(body))
}
