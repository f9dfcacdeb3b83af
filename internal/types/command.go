// Package types defines the data model of the command dispatch protocol.
package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CommandID identifies a command within a command group.
type CommandID uint32

// Well-known command IDs of the standard group.
const (
	CmdShowScriptError CommandID = 40
	CmdShowMessage     CommandID = 41
)

// String returns the decimal ID.
func (id CommandID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseCommandID parses a decimal command ID.
func ParseCommandID(s string) (CommandID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid command id '%s'", s)
	}
	return CommandID(n), nil
}

// StatusFlags is the bitset a receiver reports for a command.
// The bit values match the host's wire format and must not change.
type StatusFlags uint32

// StatusFlags bits.
const (
	StatusNone      StatusFlags = 0
	StatusSupported StatusFlags = 1 // The receiver knows the command
	StatusEnabled   StatusFlags = 2 // The command can be executed now
	StatusLatched   StatusFlags = 4 // Toggle command that is currently on
	StatusReserved  StatusFlags = 8
)

var statusNames = []struct {
	flag StatusFlags
	name string
}{
	{StatusSupported, "supported"},
	{StatusEnabled, "enabled"},
	{StatusLatched, "latched"},
	{StatusReserved, "reserved"},
}

// Has reports whether every bit of f is set.
func (s StatusFlags) Has(f StatusFlags) bool { return s&f == f }

// With returns s with the bits of f set.
func (s StatusFlags) With(f StatusFlags) StatusFlags { return s | f }

// Without returns s with the bits of f cleared.
func (s StatusFlags) Without(f StatusFlags) StatusFlags { return s &^ f }

// IsSupported reports the Supported bit.
func (s StatusFlags) IsSupported() bool { return s.Has(StatusSupported) }

// IsEnabled reports the Enabled bit.
func (s StatusFlags) IsEnabled() bool { return s.Has(StatusEnabled) }

// IsLatched reports the Latched bit.
func (s StatusFlags) IsLatched() bool { return s.Has(StatusLatched) }

// String lists the set bits, e.g. "supported|enabled", or "none".
func (s StatusFlags) String() string {
	if s == StatusNone {
		return "none"
	}
	var parts []string
	rest := s
	for _, n := range statusNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// CommandRecord is the single command a status query is issued for.
// The caller sets ID; the receiver fills Flags.
type CommandRecord struct {
	ID    CommandID   `json:"id"`
	Flags StatusFlags `json:"flags"`
}

// ExecOption tells the receiver how to execute a command.
type ExecOption uint32

// ExecOption values.
const (
	ExecDefault        ExecOption = iota // Prompt or not, whichever is the command's default
	ExecPromptUser                       // Execute after obtaining user input
	ExecDontPromptUser                   // Execute without prompting
	ExecShowHelp                         // Show help only, do not execute
)

// Valid reports whether o is one of the defined options.
func (o ExecOption) Valid() bool { return o <= ExecShowHelp }

func (o ExecOption) String() string {
	switch o {
	case ExecDefault:
		return "default"
	case ExecPromptUser:
		return "prompt"
	case ExecDontPromptUser:
		return "no-prompt"
	case ExecShowHelp:
		return "help"
	default:
		return fmt.Sprintf("ExecOption(%d)", uint32(o))
	}
}

// ParseExecOption parses the names printed by ExecOption.String.
func ParseExecOption(s string) (ExecOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ExecDefault, nil
	case "prompt", "promptuser":
		return ExecPromptUser, nil
	case "no-prompt", "dontpromptuser":
		return ExecDontPromptUser, nil
	case "help", "showhelp":
		return ExecShowHelp, nil
	default:
		return 0, fmt.Errorf("unknown exec option '%s'", s)
	}
}

// TextFlags selects which command text a host may ask for. The protocol
// never carries command text; the values exist for wire compatibility.
type TextFlags uint32

// TextFlags values.
const (
	TextNone   TextFlags = 0
	TextName   TextFlags = 1
	TextStatus TextFlags = 2
)

// GroupID scopes a command-ID namespace. The zero value is the standard group,
// which is also what an absent group means.
type GroupID uuid.UUID

// StandardGroup is the default command group.
var StandardGroup = GroupID(uuid.Nil)

// CommandTargetIID is the interface identifier of the command target protocol.
var CommandTargetIID = uuid.MustParse("b722bccb-4e68-101b-a2bc-00aa00404770")

// NewGroupID returns a random group identifier for receiver-defined commands.
func NewGroupID() GroupID {
	return GroupID(uuid.New())
}

// ParseGroupID parses a GUID in any form accepted by uuid.Parse.
// An empty string and "standard" yield StandardGroup.
func ParseGroupID(s string) (GroupID, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "standard") {
		return StandardGroup, nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return StandardGroup, fmt.Errorf("invalid command group '%s': %w", s, err)
	}
	return GroupID(u), nil
}

// MustParseGroupID is like ParseGroupID but panics on error.
func MustParseGroupID(s string) GroupID {
	g, err := ParseGroupID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// IsStandard reports whether g is the standard group.
func (g GroupID) IsStandard() bool { return g == StandardGroup }

// String returns "standard" for the standard group, otherwise the GUID.
func (g GroupID) String() string {
	if g.IsStandard() {
		return "standard"
	}
	return uuid.UUID(g).String()
}

// MarshalText implements encoding.TextMarshaler. The standard group marshals
// to an empty string.
func (g GroupID) MarshalText() ([]byte, error) {
	if g.IsStandard() {
		return []byte{}, nil
	}
	return []byte(uuid.UUID(g).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GroupID) UnmarshalText(text []byte) error {
	parsed, err := ParseGroupID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
