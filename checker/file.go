package checker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/projecteru2/memsize/options"
)

type entry struct {
	line  int
	name  string
	value string
	err   error
}

func isStructured(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	}
	return false
}

// loadFlags reads one assignment per line, blank lines and # comments are skipped
func loadFlags(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := []entry{}
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, err := options.SplitArg(line)
		entries = append(entries, entry{line: n, name: name, value: value, err: err})
	}
	return entries, scanner.Err()
}

// loadStructured reads the options map of a yaml, json or toml file.
// Values reach the parser as written, decoders never get to reinterpret them as numbers.
func loadStructured(path string) ([]entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = jsonEntries(content)
	case ".toml":
		entries, err = tomlEntries(content)
	default:
		entries, err = yamlEntries(content)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "options of %s", path)
	}

	slices.SortStableFunc(entries, func(a, b entry) bool { return a.name < b.name })
	return entries, nil
}

// yamlEntries keeps the scalar source text, so 010 stays decimal and 0x10 reaches the parser
func yamlEntries(content []byte) ([]entry, error) {
	doc := struct {
		Options yaml.Node `yaml:"options"`
	}{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	node := doc.Options
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
	default:
		return nil, errors.Newf("line %d: options must be a mapping", node.Line)
	}

	entries := make([]entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		e := entry{line: key.Line, name: key.Value, value: value.Value}
		if value.Kind != yaml.ScalarNode {
			e.err = errors.Wrapf(options.ErrBadSyntax, "%s is not a scalar", key.Value)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// jsonEntries decodes numbers as json.Number, big values are not rounded through float64
func jsonEntries(content []byte) ([]entry, error) {
	doc := struct {
		Options map[string]any `json:"options"`
	}{}
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	return mapEntries(doc.Options), nil
}

func tomlEntries(content []byte) ([]entry, error) {
	doc := struct {
		Options map[string]any `toml:"options"`
	}{}
	if _, err := toml.Decode(string(content), &doc); err != nil {
		return nil, err
	}
	return mapEntries(doc.Options), nil
}

func mapEntries(values map[string]any) []entry {
	entries := make([]entry, 0, len(values))
	for name, v := range values {
		text, err := scalarText(v)
		entries = append(entries, entry{name: name, value: text, err: err})
	}
	return entries
}

// scalarText turns a decoded scalar back into text.
// Strings and json.Number are taken as is, toml integers are exact int64.
// Floats, booleans and nested values are refused.
func scalarText(v any) (string, error) {
	var text string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: func(from reflect.Type, _ reflect.Type, data any) (any, error) {
			if from.Kind() == reflect.Int64 {
				return strconv.FormatInt(reflect.ValueOf(data).Int(), 10), nil
			}
			return data, nil
		},
		Result: &text,
	})
	if err != nil {
		return "", err
	}
	if err := decoder.Decode(v); err != nil {
		return "", errors.Wrap(options.ErrBadSyntax, err.Error())
	}
	return text, nil
}
