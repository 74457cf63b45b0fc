package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseJSON parses a locale -> key -> message JSON document.
func ParseJSON(content []byte) (map[string]map[string]string, error) {
	var data map[string]map[string]string
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return validateTranslations(data)
}

// ParseYAML parses a locale -> key -> message YAML document.
func ParseYAML(content []byte) (map[string]map[string]string, error) {
	var data map[string]map[string]string
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return validateTranslations(data)
}

func validateTranslations(data map[string]map[string]string) (map[string]map[string]string, error) {
	for locale, messages := range data {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrInvalidStructure)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil message map for locale %q", ErrInvalidStructure, locale)
		}
	}
	return data, nil
}

// LoadFS reads every .json, .yaml and .yml file under dir in fsys and merges
// the parsed translations. Later files win on key collisions within a
// locale. Works with embed.FS as well as os.DirFS.
func LoadFS(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	merged := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		var parsed map[string]map[string]string
		if ext == ".json" {
			parsed, err = ParseJSON(content)
		} else {
			parsed, err = ParseYAML(content)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		for locale, messages := range parsed {
			if merged[locale] == nil {
				merged[locale] = make(map[string]string, len(messages))
			}
			for key, msg := range messages {
				merged[locale][key] = msg
			}
		}
	}

	return merged, nil
}
