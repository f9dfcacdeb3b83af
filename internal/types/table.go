package types

import (
	"fmt"
	"strings"
)

// CommandTable is the command table file (cmdtarget.yml) read by the
// table-driven command target.
type CommandTable struct {
	Commands []CommandDef `yaml:"commands"`
}

// CommandDef declares one command of the table.
type CommandDef struct {
	ID    CommandID `yaml:"id"`
	Name  string    `yaml:"name"`
	Group GroupID   `yaml:"group"`
	Shape CallShape `yaml:"shape,omitempty"`

	// Enabled defaults to true when omitted
	Enabled *bool `yaml:"enabled,omitempty"`
	Toggle  bool  `yaml:"toggle,omitempty"`
	Latched bool  `yaml:"latched,omitempty"`

	// Prompt makes ExecDefault ask for confirmation before running
	Prompt bool `yaml:"prompt,omitempty"`

	ValueKind string `yaml:"value_kind,omitempty"`
	Value     string `yaml:"value,omitempty"`

	Help    string `yaml:"help,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// IsEnabled resolves the optional Enabled field.
func (d *CommandDef) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// Kind returns the parsed value kind. Validate has already rejected bad kinds.
func (d *CommandDef) Kind() Kind {
	k, _ := ParseKind(d.ValueKind) //nolint:errcheck
	return k
}

// Ref returns "group:id", or just the ID for the standard group.
func (d *CommandDef) Ref() string {
	if d.Group.IsStandard() {
		return d.ID.String()
	}
	return d.Group.String() + ":" + d.ID.String()
}

// Validate checks the table for duplicate commands and inconsistent fields.
func (t *CommandTable) Validate() error {
	type key struct {
		group GroupID
		id    CommandID
	}
	seenIDs := make(map[key]string)
	seenNames := make(map[string]bool)

	for i := range t.Commands {
		d := &t.Commands[i]
		label := d.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		if d.Name != "" {
			// Names are looked up case-insensitively
			lower := strings.ToLower(d.Name)
			if seenNames[lower] {
				return fmt.Errorf("command '%s': duplicate name", d.Name)
			}
			seenNames[lower] = true
		}

		k := key{d.Group, d.ID}
		if other, ok := seenIDs[k]; ok {
			return fmt.Errorf("command '%s': id %s in group %s already used by '%s'", label, d.ID, d.Group, other)
		}
		seenIDs[k] = label

		if d.Shape < ShapeRaw || d.Shape > ShapeSetValue {
			return fmt.Errorf("command '%s': unknown call shape %d", label, int(d.Shape))
		}

		kind, err := ParseKind(d.ValueKind)
		if err != nil {
			return fmt.Errorf("command '%s': %w", label, err)
		}
		if d.Value != "" {
			if kind == KindEmpty {
				return fmt.Errorf("command '%s': value set without value_kind", label)
			}
			if _, err := ParseVariant(kind, d.Value); err != nil {
				return fmt.Errorf("command '%s': %w", label, err)
			}
		}

		if d.Latched && !d.Toggle {
			return fmt.Errorf("command '%s': latched is only valid for toggle commands", label)
		}
	}
	return nil
}

// Find returns the command declared for group and id.
func (t *CommandTable) Find(group GroupID, id CommandID) (*CommandDef, bool) {
	for i := range t.Commands {
		if t.Commands[i].Group == group && t.Commands[i].ID == id {
			return &t.Commands[i], true
		}
	}
	return nil, false
}

// FindByName returns the command with the given name (case-insensitive).
func (t *CommandTable) FindByName(name string) (*CommandDef, bool) {
	for i := range t.Commands {
		if strings.EqualFold(t.Commands[i].Name, name) {
			return &t.Commands[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy so a receiver can own its table.
func (t CommandTable) Clone() CommandTable {
	out := CommandTable{Commands: make([]CommandDef, len(t.Commands))}
	copy(out.Commands, t.Commands)
	for i := range out.Commands {
		if e := out.Commands[i].Enabled; e != nil {
			v := *e
			out.Commands[i].Enabled = &v
		}
	}
	return out
}
