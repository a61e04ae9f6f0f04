package router

import (
	"reflect"
	"strings"
	"testing"
)

func parseOK(t *testing.T, line string) *Invocation {
	t.Helper()
	inv, err := New("devtools").Parse(strings.Fields(line))
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return inv
}

func parseFail(t *testing.T, line string) *ParseError {
	t.Helper()
	tokens := strings.Fields(line)
	_, err := New("devtools").Parse(tokens)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error", line)
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Parse(%q) error type %T, want *ParseError", line, err)
	}
	return pe
}

func TestParseRoutesOperations(t *testing.T) {
	tests := []struct {
		line string
		op   string
		args []string
	}{
		{"-x", OpBotClose, nil},
		{"-u", OpBotUptime, nil},
		{"--update-requirements", OpBotUpdateRequirements, nil},
		{"--reload-module modules.core", OpBotReloadModule, []string{"modules.core"}},
		{"cg -l", OpControlGroupsList, nil},
		{"control-groups --list", OpControlGroupsList, nil},
		{"cg -E devonly", OpControlGroupsEditAll, []string{"devonly"}},
		{"cg -e mygroup enabled", OpControlGroupsEdit, []string{"mygroup", "enabled"}},
		{"control-groups --edit mygroup enabled", OpControlGroupsEdit, []string{"mygroup", "enabled"}},
		{"cw -l", OpControlWhitelistsList, nil},
		{"cw -g vips", OpControlWhitelistsGet, []string{"vips"}},
		{"cb -g muted", OpControlBlacklistsGet, []string{"muted"}},
		{"e -r modules.core", OpExtensionsReload, []string{"modules.core"}},
		{"extensions --load-all", OpExtensionsLoadAll, nil},
		{"s -G 111 222", OpSyncGuilds, []string{"111", "222"}},
		{"sync --clear-current", OpSyncClearCurrent, nil},
		{"g --pull", OpGitPull, nil},
		{"c -l", OpCommandsList, nil},
		{"t -g core", OpTrackersGet, []string{"core"}},
		{"f -l", OpFilesList, []string{}},
		{"f -l sub dir", OpFilesList, []string{"sub", "dir"}},
		{"files --download logs", OpFilesDownload, []string{"logs"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			inv := parseOK(t, tt.line)
			if inv.Op != tt.op {
				t.Errorf("Op = %q, want %q", inv.Op, tt.op)
			}
			if len(tt.args) == 0 && len(inv.Args) == 0 {
				return
			}
			if !reflect.DeepEqual(inv.Args, tt.args) {
				t.Errorf("Args = %v, want %v", inv.Args, tt.args)
			}
		})
	}
}

func TestParseIntegerCoercion(t *testing.T) {
	inv := parseOK(t, "cw -a vips 123456789012345")
	if inv.Op != OpControlWhitelistsAdd {
		t.Fatalf("Op = %q", inv.Op)
	}
	if !reflect.DeepEqual(inv.Args, []string{"vips"}) {
		t.Fatalf("Args = %v, want [vips]", inv.Args)
	}
	if !inv.HasInt || inv.Int != 123456789012345 {
		t.Fatalf("Int = %d (has=%v), want 123456789012345", inv.Int, inv.HasInt)
	}
}

func TestParseIntegerCoercionFailure(t *testing.T) {
	pe := parseFail(t, "cw -a vips not_an_int")
	joined := pe.Error()
	if !strings.Contains(joined, "argument 2 must be an integer") {
		t.Fatalf("diagnostics %q missing integer message", joined)
	}
	if !strings.Contains(pe.Messages[0], "usage: devtools control-whitelists") {
		t.Fatalf("first diagnostic %q is not the usage line", pe.Messages[0])
	}
	if !strings.Contains(joined, "devtools control-whitelists: error:") {
		t.Fatalf("diagnostics %q missing error prefix", joined)
	}
}

func TestParseEmptyInputIsHelp(t *testing.T) {
	pe := parseFail(t, "")
	if len(pe.Messages) != 1 {
		t.Fatalf("help failure has %d messages, want 1", len(pe.Messages))
	}
	if !strings.Contains(pe.Messages[0], "usage: devtools") {
		t.Fatalf("help text %q missing usage", pe.Messages[0])
	}
	if !strings.Contains(pe.Messages[0], "control-groups (cg)") {
		t.Fatalf("help text %q missing command list", pe.Messages[0])
	}
}

func TestParseHelpFlag(t *testing.T) {
	pe := parseFail(t, "cg -h")
	if !strings.Contains(pe.Messages[0], "usage: devtools control-groups") {
		t.Fatalf("group help %q missing group usage", pe.Messages[0])
	}
}

func TestParseInvalidSubcommand(t *testing.T) {
	pe := parseFail(t, "bogus -l")
	if !strings.Contains(pe.Error(), "invalid choice") {
		t.Fatalf("diagnostics %q missing invalid choice", pe.Error())
	}
}

func TestParseMutuallyExclusiveFlags(t *testing.T) {
	pe := parseFail(t, "cg -l -e mygroup enabled")
	if !strings.Contains(pe.Error(), "argument -e/--edit: not allowed with argument -l/--list") {
		t.Fatalf("diagnostics %q missing conflict message", pe.Error())
	}
}

func TestParseSubgroupRequiresFlag(t *testing.T) {
	pe := parseFail(t, "cg")
	if !strings.Contains(pe.Error(), "one of the arguments") {
		t.Fatalf("diagnostics %q missing required message", pe.Error())
	}
}

func TestParseMissingFixedArguments(t *testing.T) {
	pe := parseFail(t, "cg -e onlyname")
	if !strings.Contains(pe.Error(), "expected 2 argument(s)") {
		t.Fatalf("diagnostics %q missing arity message", pe.Error())
	}
}

func TestParseVariadicRequiresOne(t *testing.T) {
	pe := parseFail(t, "s -G")
	if !strings.Contains(pe.Error(), "expected at least one argument") {
		t.Fatalf("diagnostics %q missing variadic message", pe.Error())
	}
}

func TestParseUnrecognizedArguments(t *testing.T) {
	pe := parseFail(t, "cg --frobnicate")
	if !strings.Contains(pe.Error(), "unrecognized arguments: --frobnicate") {
		t.Fatalf("diagnostics %q missing unrecognized message", pe.Error())
	}
}

func TestErrorfSharesDiagnosticShape(t *testing.T) {
	p := New("devtools")
	pe := p.Errorf("trackers", "tracker '%s' does not exist", "core")
	if len(pe.Messages) != 2 {
		t.Fatalf("Errorf produced %d messages, want 2", len(pe.Messages))
	}
	if !strings.Contains(pe.Messages[0], "usage: devtools trackers") {
		t.Fatalf("usage line = %q", pe.Messages[0])
	}
	if pe.Messages[1] != "devtools trackers: error: tracker 'core' does not exist" {
		t.Fatalf("error line = %q", pe.Messages[1])
	}
}
