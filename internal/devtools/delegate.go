package devtools

import (
	"context"
	"errors"
	"strings"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

// opFunc is one delegate operation handler. A handler replies itself and
// returns nil, or returns an error which Delegate surfaces as the single
// negative reply. No error escapes the dispatch boundary.
type opFunc func(ctx context.Context, actx Context, inv *router.Invocation) error

// Delegate runs one raw admin command line on behalf of actx. Every path —
// parse failure, unknown name, host failure, success — terminates in exactly
// one reply to the invoker.
func (d *DevTools) Delegate(ctx context.Context, actx Context, tokens []string) error {
	if !d.allow(actx.UserID()) {
		return actx.Reply(message.Neg("Too many admin commands at once; try again shortly."))
	}

	d.log.WithField("tokens", strings.Join(tokens, " ")).Debug("delegating")
	inv, err := d.parser.Parse(tokens)
	if err != nil {
		return d.replyErr(actx, err)
	}
	handler, ok := d.ops[inv.Op]
	if !ok {
		return actx.Reply(message.Neg("unknown operation: " + inv.Op))
	}
	if err := handler(ctx, actx, inv); err != nil {
		return d.replyErr(actx, err)
	}
	return nil
}

func (d *DevTools) replyErr(actx Context, err error) error {
	var pe *router.ParseError
	if errors.As(err, &pe) {
		return actx.Reply(message.Neg(strings.Join(pe.Messages, "\n")))
	}
	return actx.Reply(message.Neg(err.Error()))
}

// buildOps maps every operation key the router can produce to its handler.
func (d *DevTools) buildOps() map[string]opFunc {
	return map[string]opFunc{
		router.OpBotClose:              d.opBotClose,
		router.OpBotUptime:             d.opBotUptime,
		router.OpBotUpdateRequirements: d.opBotUpdateRequirements,
		router.OpBotReloadModule:       d.opBotReloadModule,

		router.OpControlGroupsList:    d.opGroupsList,
		router.OpControlGroupsEditAll: d.opGroupsEditAll,
		router.OpControlGroupsEdit:    d.opGroupsEdit,

		router.OpControlWhitelistsList: d.listOp(d.whitelistKind(), opList),
		router.OpControlWhitelistsGet:  d.listOp(d.whitelistKind(), opGet),
		router.OpControlWhitelistsAdd:  d.listOp(d.whitelistKind(), opAdd),
		router.OpControlWhitelistsRem:  d.listOp(d.whitelistKind(), opRemove),

		router.OpControlBlacklistsList: d.listOp(d.blacklistKind(), opList),
		router.OpControlBlacklistsGet:  d.listOp(d.blacklistKind(), opGet),
		router.OpControlBlacklistsAdd:  d.listOp(d.blacklistKind(), opAdd),
		router.OpControlBlacklistsRem:  d.listOp(d.blacklistKind(), opRemove),

		router.OpExtensionsList:      d.opExtensionsList,
		router.OpExtensionsReloadAll: d.opExtensionsReloadAll,
		router.OpExtensionsReload:    d.opExtensionsReload,
		router.OpExtensionsUnloadAll: d.opExtensionsUnloadAll,
		router.OpExtensionsUnload:    d.opExtensionsUnload,
		router.OpExtensionsLoadAll:   d.opExtensionsLoadAll,
		router.OpExtensionsLoad:      d.opExtensionsLoad,

		router.OpSyncGuilds:            d.opSyncGuilds,
		router.OpSyncCurrent:           d.opSyncCurrent,
		router.OpSyncGlobal:            d.opSyncGlobal,
		router.OpSyncCopyGlobalCurrent: d.opSyncCopyGlobalCurrent,
		router.OpSyncCopyGlobal:        d.opSyncCopyGlobal,
		router.OpSyncClearGlobal:       d.opSyncClearGlobal,
		router.OpSyncClearCurrent:      d.opSyncClearCurrent,
		router.OpSyncClearGuilds:       d.opSyncClearGuilds,

		router.OpGitPull:      d.opGitPull,
		router.OpCommandsList: d.opCommandsList,

		router.OpTrackersList: d.opTrackersList,
		router.OpTrackersGet:  d.opTrackersGet,

		router.OpFilesList:     d.opFilesList,
		router.OpFilesDownload: d.opFilesDownload,
		router.OpFilesUpload:   d.opFilesUpload,
		router.OpFilesRemove:   d.opFilesRemove,
	}
}
