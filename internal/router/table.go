package router

// Operation keys. The key identifies the handler the dispatcher invokes; the
// route table below defines how each is reached.
const (
	OpBotClose               = "bot.close"
	OpBotUptime              = "bot.uptime"
	OpBotUpdateRequirements  = "bot.update_requirements"
	OpBotReloadModule        = "bot.reload_module"
	OpControlGroupsList      = "control_groups.list"
	OpControlGroupsEditAll   = "control_groups.edit_all"
	OpControlGroupsEdit      = "control_groups.edit"
	OpControlWhitelistsList  = "control_whitelists.list"
	OpControlWhitelistsGet   = "control_whitelists.get"
	OpControlWhitelistsAdd   = "control_whitelists.add"
	OpControlWhitelistsRem   = "control_whitelists.remove"
	OpControlBlacklistsList  = "control_blacklists.list"
	OpControlBlacklistsGet   = "control_blacklists.get"
	OpControlBlacklistsAdd   = "control_blacklists.add"
	OpControlBlacklistsRem   = "control_blacklists.remove"
	OpExtensionsList         = "extensions.list"
	OpExtensionsReloadAll    = "extensions.reload_all"
	OpExtensionsReload       = "extensions.reload"
	OpExtensionsUnloadAll    = "extensions.unload_all"
	OpExtensionsUnload       = "extensions.unload"
	OpExtensionsLoadAll      = "extensions.load_all"
	OpExtensionsLoad         = "extensions.load"
	OpSyncGuilds             = "sync.guilds"
	OpSyncCurrent            = "sync.current"
	OpSyncGlobal             = "sync.global"
	OpSyncCopyGlobalCurrent  = "sync.copy_global_current"
	OpSyncCopyGlobal         = "sync.copy_global"
	OpSyncClearGlobal        = "sync.clear_global"
	OpSyncClearCurrent       = "sync.clear_current"
	OpSyncClearGuilds        = "sync.clear_guilds"
	OpGitPull                = "git.pull"
	OpCommandsList           = "commands.list"
	OpTrackersList           = "trackers.list"
	OpTrackersGet            = "trackers.get"
	OpFilesList              = "files.list"
	OpFilesDownload          = "files.download"
	OpFilesUpload            = "files.upload"
	OpFilesRemove            = "files.remove"
)

// arity describes how many positional arguments a flag consumes.
type arity int

const (
	argsNone arity = iota
	argsOne
	argsTwo
	argsStrInt       // two tokens, second must parse as an integer
	argsVariadicPlus // one or more tokens
	argsVariadicStar // zero or more tokens
)

type flagSpec struct {
	short    string // "-l"; empty when only a long form exists
	long     string // "--list"
	op       string
	kind     arity
	metavars []string
	help     string
}

type groupSpec struct {
	name    string // "" for the root group
	alias   string
	desc    string
	flags   []flagSpec
}

// routes is the compiled grammar: one group of mutually-exclusive flags per
// subcommand, exactly as the delegate command documents them.
var routes = []groupSpec{
	{
		name: "", desc: "developer and administrator tools",
		flags: []flagSpec{
			{short: "-x", long: "--close", op: OpBotClose, kind: argsNone, help: "close the bot"},
			{short: "-u", long: "--uptime", op: OpBotUptime, kind: argsNone, help: "get the uptime of the bot"},
			{long: "--update-requirements", op: OpBotUpdateRequirements, kind: argsNone, help: "update the module requirements"},
			{long: "--reload-module", op: OpBotReloadModule, kind: argsOne, metavars: []string{"<module_name_startswith>"}, help: "reload the given module"},
		},
	},
	{
		name: "control-groups", alias: "cg", desc: "manage control groups",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpControlGroupsList, kind: argsNone, help: "list all control groups and their current values"},
			{short: "-E", long: "--edit-all", op: OpControlGroupsEditAll, kind: argsOne, metavars: []string{"<value>"}, help: "edit all control groups and set them to <value>"},
			{short: "-e", long: "--edit", op: OpControlGroupsEdit, kind: argsTwo, metavars: []string{"<name>", "<value>"}, help: "edit a control group's value"},
		},
	},
	{
		name: "control-whitelists", alias: "cw", desc: "manage whitelists",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpControlWhitelistsList, kind: argsNone, help: "list all whitelist groups"},
			{short: "-g", long: "--get", op: OpControlWhitelistsGet, kind: argsOne, metavars: []string{"<name>"}, help: "list all users in the given whitelist"},
			{short: "-a", long: "--add", op: OpControlWhitelistsAdd, kind: argsStrInt, metavars: []string{"<name>", "<userid>"}, help: "add a user to the given whitelist"},
			{short: "-r", long: "--remove", op: OpControlWhitelistsRem, kind: argsStrInt, metavars: []string{"<name>", "<userid>"}, help: "remove a user from the given whitelist"},
		},
	},
	{
		name: "control-blacklists", alias: "cb", desc: "manage blacklists",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpControlBlacklistsList, kind: argsNone, help: "list all blacklist groups"},
			{short: "-g", long: "--get", op: OpControlBlacklistsGet, kind: argsOne, metavars: []string{"<name>"}, help: "list all users in the given blacklist"},
			{short: "-a", long: "--add", op: OpControlBlacklistsAdd, kind: argsStrInt, metavars: []string{"<name>", "<userid>"}, help: "add a user to the given blacklist"},
			{short: "-r", long: "--remove", op: OpControlBlacklistsRem, kind: argsStrInt, metavars: []string{"<name>", "<userid>"}, help: "remove a user from the given blacklist"},
		},
	},
	{
		name: "extensions", alias: "e", desc: "load, unload, and reload extensions",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpExtensionsList, kind: argsNone, help: "list all current extensions"},
			{short: "-R", long: "--reload-all", op: OpExtensionsReloadAll, kind: argsNone, help: "reload all extensions"},
			{short: "-r", long: "--reload", op: OpExtensionsReload, kind: argsOne, metavars: []string{"<name>"}, help: "reload an extension"},
			{short: "-U", long: "--unload-all", op: OpExtensionsUnloadAll, kind: argsNone, help: "unload all extensions"},
			{short: "-u", long: "--unload", op: OpExtensionsUnload, kind: argsOne, metavars: []string{"<name>"}, help: "unload an extension"},
			{short: "-L", long: "--load-all", op: OpExtensionsLoadAll, kind: argsNone, help: "load all extensions"},
			{short: "-d", long: "--load", op: OpExtensionsLoad, kind: argsOne, metavars: []string{"<name>"}, help: "load an extension"},
		},
	},
	{
		name: "sync", alias: "s", desc: "sync commands",
		flags: []flagSpec{
			{short: "-G", long: "--guilds", op: OpSyncGuilds, kind: argsVariadicPlus, metavars: []string{"<guildid>"}, help: "sync the command tree to one or more guilds (as guild IDs)"},
			{short: "-c", long: "--current", op: OpSyncCurrent, kind: argsNone, help: "sync the command tree to the current guild"},
			{short: "-g", long: "--global", op: OpSyncGlobal, kind: argsNone, help: "sync the command tree to all guilds"},
			{short: "-p", long: "--copy-global-current", op: OpSyncCopyGlobalCurrent, kind: argsNone, help: "copy global commands to the current guild"},
			{short: "-P", long: "--copy-global", op: OpSyncCopyGlobal, kind: argsVariadicPlus, metavars: []string{"<guildid>"}, help: "copy global commands to one or more guilds (as guild IDs)"},
			{short: "-C", long: "--clear", op: OpSyncClearGlobal, kind: argsNone, help: "clear all global commands from the command tree"},
			{short: "-x", long: "--clear-current", op: OpSyncClearCurrent, kind: argsNone, help: "clear all commands from the command tree of the current guild"},
			{short: "-X", long: "--clear-guilds", op: OpSyncClearGuilds, kind: argsVariadicPlus, metavars: []string{"<guildid>"}, help: "clear the command tree for one or more guilds (as guild IDs)"},
		},
	},
	{
		name: "git", alias: "g", desc: "run git commands",
		flags: []flagSpec{
			{long: "--pull", op: OpGitPull, kind: argsNone, help: "run git pull"},
		},
	},
	{
		name: "commands", alias: "c", desc: "command information",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpCommandsList, kind: argsNone, help: "list the current commands"},
		},
	},
	{
		name: "trackers", alias: "t", desc: "get information from command trackers",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpTrackersList, kind: argsNone, help: "list all command trackers"},
			{short: "-g", long: "--get", op: OpTrackersGet, kind: argsOne, metavars: []string{"<name>"}, help: "get information from a command tracker"},
		},
	},
	{
		name: "files", alias: "f", desc: "navigate, download, or replace files in the designated directory",
		flags: []flagSpec{
			{short: "-l", long: "--list", op: OpFilesList, kind: argsVariadicStar, metavars: []string{"<subpath>"}, help: "list files and directories in the master path or given subpath"},
			{short: "-d", long: "--download", op: OpFilesDownload, kind: argsVariadicStar, metavars: []string{"<subpath>"}, help: "download the file or directory at the master path or given subpath"},
			{short: "-u", long: "--upload", op: OpFilesUpload, kind: argsVariadicStar, metavars: []string{"<subpath>"}, help: "upload a file (sent afterwards) to the master path or given subpath"},
			{short: "-r", long: "--remove", op: OpFilesRemove, kind: argsVariadicStar, metavars: []string{"<subpath>"}, help: "remove the file or directory at the master path or given subpath"},
		},
	},
}

// display is the flag name as shown in diagnostics, e.g. "-e/--edit".
func (f *flagSpec) display() string {
	if f.short == "" {
		return f.long
	}
	return f.short + "/" + f.long
}

func (f *flagSpec) matches(token string) bool {
	return (f.short != "" && token == f.short) || token == f.long
}

func findGroup(name string) *groupSpec {
	for i := range routes {
		if routes[i].name != "" && (routes[i].name == name || routes[i].alias == name) {
			return &routes[i]
		}
	}
	return nil
}
