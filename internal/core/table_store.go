package core

import (
	"fmt"

	"github.com/EmundoT/cmdtarget/internal/types"
)

// TableStore handles cmdtarget.yml I/O operations
type TableStore interface {
	Load() (types.CommandTable, error)
	Save(table types.CommandTable) error
	Path() string
}

// FileTableStore implements TableStore using the filesystem
type FileTableStore struct {
	store *YAMLStore[types.CommandTable]
}

// NewFileTableStore creates a new FileTableStore rooted at rootDir
func NewFileTableStore(rootDir string) *FileTableStore {
	return &FileTableStore{store: NewYAMLStore[types.CommandTable](rootDir, TableName)}
}

// Path returns the table file path
func (s *FileTableStore) Path() string {
	return s.store.Path()
}

// Exists reports whether the table file has been created
func (s *FileTableStore) Exists() bool {
	return s.store.Exists()
}

// Load reads, parses and validates cmdtarget.yml
func (s *FileTableStore) Load() (types.CommandTable, error) {
	table, err := s.store.Load()
	if err != nil {
		return types.CommandTable{}, err
	}
	if err := table.Validate(); err != nil {
		return types.CommandTable{}, fmt.Errorf("invalid %s: %w", TableName, err)
	}
	return table, nil
}

// Save validates and writes cmdtarget.yml
func (s *FileTableStore) Save(table types.CommandTable) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid table: %w", err)
	}
	return s.store.Save(table)
}

func mustGroup(s string) types.GroupID {
	return types.MustParseGroupID(s)
}

func boolPtr(b bool) *bool {
	return &b
}

// DefaultTable is the starter table written by 'cmdtarget init': the two
// well-known standard-group commands plus one command per call shape in
// SampleGroup.
func DefaultTable() types.CommandTable {
	return types.CommandTable{Commands: []types.CommandDef{
		{
			ID:      types.CmdShowScriptError,
			Name:    "show-script-error",
			Help:    "Reports a script error raised by the document.",
			Message: "A script on this page caused an error.",
		},
		{
			ID:      types.CmdShowMessage,
			Name:    "show-message",
			Help:    "Shows a message box. Pass the text as input.",
			Message: "Hello from the command target.",
		},
		{
			ID:     1,
			Name:   "bold",
			Group:  SampleGroup,
			Toggle: true,
			Help:   "Toggles bold formatting.",
		},
		{
			ID:        2,
			Name:      "zoom",
			Group:     SampleGroup,
			Shape:     types.ShapeGetValue,
			ValueKind: "int",
			Value:     "100",
			Help:      "Returns the zoom level in percent.",
		},
		{
			ID:        3,
			Name:      "table-width",
			Group:     SampleGroup,
			Shape:     types.ShapeSetValue,
			ValueKind: "unit",
			Value:     "100%",
			Help:      "Sets the table width, in pixels or as a percentage.",
		},
		{
			ID:        4,
			Name:      "font-name",
			Group:     SampleGroup,
			Shape:     types.ShapeInOut,
			ValueKind: "string",
			Value:     "Segoe UI",
			Help:      "Sets the font name and returns the previous one.",
		},
		{
			ID:      5,
			Name:    "clear-formatting",
			Group:   SampleGroup,
			Prompt:  true,
			Enabled: boolPtr(false),
			Help:    "Removes all formatting from the selection.",
			Message: "Formatting cleared.",
		},
	}}
}
