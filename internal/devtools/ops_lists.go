package devtools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/permissions"
	"github.com/keshon/devtools/internal/router"
)

// listKind abstracts the whitelist and blacklist operation families, which
// differ only in the container they mutate and the noun in their replies.
type listKind struct {
	noun  string
	group string
	lists *permissions.UserGroups
}

func (d *DevTools) whitelistKind() listKind {
	return listKind{noun: "whitelist", group: "control-whitelists", lists: d.whitelists}
}

func (d *DevTools) blacklistKind() listKind {
	return listKind{noun: "blacklist", group: "control-blacklists", lists: d.blacklists}
}

type listAction int

const (
	opList listAction = iota
	opGet
	opAdd
	opRemove
)

func (d *DevTools) listOp(k listKind, action listAction) opFunc {
	return func(ctx context.Context, actx Context, inv *router.Invocation) error {
		switch action {
		case opList:
			body := strings.Join(k.lists.Names(), ", ")
			if body == "" {
				body = "NONE"
			}
			return actx.Reply(message.Def(body))

		case opGet:
			name := inv.Args[0]
			if !k.lists.Has(name) {
				return d.parser.Errorf(k.group, "%s '%s' not found", k.noun, name)
			}
			ids := k.lists.Get(name)
			parts := make([]string, len(ids))
			for i, id := range ids {
				parts[i] = strconv.FormatInt(id, 10)
			}
			body := strings.Join(parts, ", ")
			if body == "" {
				body = "NONE"
			}
			return actx.Reply(message.Def(body))

		case opAdd:
			name, userID := inv.Args[0], inv.Int
			if !k.lists.Has(name) {
				return d.parser.Errorf(k.group, "%s '%s' not found", k.noun, name)
			}
			if err := k.lists.Add(name, userID); err != nil {
				if errors.Is(err, permissions.ErrAlreadyPresent) {
					return d.parser.Errorf(k.group, "%s '%s' already contains the userid '%d'",
						k.noun, name, userID)
				}
				return err
			}
			d.persist()
			return actx.Reply(message.Pos(fmt.Sprintf("userid '%d' added to the %s '%s'",
				userID, k.noun, name)))

		default: // opRemove
			name, userID := inv.Args[0], inv.Int
			if !k.lists.Has(name) {
				return d.parser.Errorf(k.group, "%s '%s' not found", k.noun, name)
			}
			if err := k.lists.Remove(name, userID); err != nil {
				if errors.Is(err, permissions.ErrNotPresent) {
					return d.parser.Errorf(k.group, "%s '%s' does not contain the userid '%d'",
						k.noun, name, userID)
				}
				return err
			}
			d.persist()
			return actx.Reply(message.Pos(fmt.Sprintf("userid '%d' removed from the %s '%s'",
				userID, k.noun, name)))
		}
	}
}
