package devtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
	"github.com/keshon/devtools/pkg/cmd"
)

func (d *DevTools) opCommandsList(ctx context.Context, actx Context, inv *router.Invocation) error {
	all := d.registry.GetAll()
	lines := make([]string, 0, len(all))
	for i, c := range all {
		lines = append(lines, fmt.Sprintf("core[%d] -> '%s'@%T", i, c.Name(), cmd.Root(c)))
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = "NONE"
	}
	return actx.Reply(message.Def(body))
}
