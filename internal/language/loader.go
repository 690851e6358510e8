package language

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/dshills/textcore/internal/engine/cell"
)

// profileFile is the TOML shape of a user-defined language profile.
type profileFile struct {
	Name        string              `toml:"name"`
	Extensions  []string            `toml:"extensions"`
	LineComment string              `toml:"line-comment"`
	Keywords    map[string][]string `toml:"keywords"`
	Rules       []ruleFile          `toml:"rules"`
}

type ruleFile struct {
	Pattern string `toml:"pattern"`
	Color   string `toml:"color"`
}

// colorByName maps TOML color names to palette entries.
var colorByName = map[string]cell.Color{
	"plain":       cell.ColorPlain,
	"keyword":     cell.ColorKeyword,
	"identifier":  cell.ColorIdentifier,
	"comment":     cell.ColorComment,
	"string":      cell.ColorString,
	"number":      cell.ColorNumber,
	"operator":    cell.ColorOperator,
	"punctuation": cell.ColorPunctuation,
	"type":        cell.ColorType,
	"function":    cell.ColorFunction,
	"constant":    cell.ColorConstant,
}

// LoadProfile reads a language profile from a TOML file.
//
// Example:
//
//	name = "ini"
//	extensions = [".ini"]
//	line-comment = ";"
//
//	[[rules]]
//	pattern = ';.*$'
//	color = "comment"
//
//	[keywords]
//	keyword = ["section"]
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf profileFile
	if _, err := toml.Decode(string(data), &pf); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if pf.Name == "" {
		return nil, fmt.Errorf("profile %s: missing name", path)
	}

	p := NewProfile(pf.Name, pf.Extensions...)
	p.SetLineComment(pf.LineComment)

	for _, r := range pf.Rules {
		color, ok := colorByName[r.Color]
		if !ok {
			return nil, fmt.Errorf("profile %s: unknown color %q", path, r.Color)
		}
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return nil, fmt.Errorf("profile %s: pattern %q: %w", path, r.Pattern, err)
		}
		p.AddRule(r.Pattern, color)
	}
	for name, words := range pf.Keywords {
		color, ok := colorByName[name]
		if !ok {
			return nil, fmt.Errorf("profile %s: unknown color %q", path, name)
		}
		p.AddKeywords(color, words...)
	}
	return p, nil
}
