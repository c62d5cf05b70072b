package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// sectionRank orders top-level tables in the written file. Tables not listed
// go last, alphabetically.
var sectionRank = map[string]int{
	"layout":     0,
	"viewport":   1,
	"appearance": 2,
	"logging":    3,
}

var tableHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// EncodeConfig renders cfg as TOML. Tables follow sectionRank and nested
// tables stay under their parent.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(orderTOMLTables(buf.String())), nil
}

// WriteConfigOrdered encodes cfg and writes it to path.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

type tomlTable struct {
	name string
	body []string
}

func (t tomlTable) root() string {
	root, _, _ := strings.Cut(t.name, ".")
	return root
}

func tableLess(a, b tomlTable) bool {
	ra, oka := sectionRank[a.root()]
	rb, okb := sectionRank[b.root()]
	switch {
	case oka && okb && ra != rb:
		return ra < rb
	case oka != okb:
		return oka
	}
	return a.name < b.name
}

// orderTOMLTables regroups encoder output by table. Keys before the first
// table header stay on top. Blank lines are normalized to one between tables.
func orderTOMLTables(content string) string {
	var top []string
	var tables []tomlTable
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, tomlTable{name: m[1], body: []string{line}})
			continue
		}
		if n := len(tables); n > 0 {
			tables[n-1].body = append(tables[n-1].body, line)
		} else {
			top = append(top, line)
		}
	}
	sort.SliceStable(tables, func(i, j int) bool { return tableLess(tables[i], tables[j]) })

	blocks := make([]string, 0, len(tables)+1)
	if len(top) > 0 {
		blocks = append(blocks, strings.Join(top, "\n"))
	}
	for _, t := range tables {
		blocks = append(blocks, strings.Join(t.body, "\n"))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
