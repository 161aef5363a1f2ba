package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/larryhastings/big-sub001/bigerr"
	"github.com/larryhastings/big-sub001/sep"
)

// readStdinOrArg returns text from arg if non-empty, otherwise reads
// all of stdin.
func readStdinOrArg(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", bigerr.ArgumentValueErrorf("reading stdin: %v", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", bigerr.ArgumentValueErrorf("reading %q: %v", path, err)
	}
	return string(b), nil
}

var namedSets = map[string]*sep.Set{
	"whitespace":              sep.NamedUnicodeWhitespace,
	"whitespace-without-crlf": sep.NamedUnicodeWhitespaceWithoutCRLF,
	"linebreaks":              sep.NamedUnicodeLinebreaks,
	"linebreaks-without-crlf": sep.NamedUnicodeLinebreaksWithoutCRLF,
	"ascii-whitespace":        sep.NamedASCIIWhitespace,
	"ascii-linebreaks":        sep.NamedASCIILinebreaks,
}

// resolveSeparators builds a separator set from explicit --sep values,
// a --named preset, or (when neither is given) a config-file preset
// named "default"; falls back to NamedUnicodeWhitespace.
func resolveSeparators(explicit []string, named string) (*sep.Set, error) {
	if len(explicit) > 0 {
		return sep.NewSet(sep.Unicode, explicit...)
	}
	if named != "" {
		if s, ok := namedSets[named]; ok {
			return s, nil
		}
		if cfg != nil {
			if items, ok := cfg.Separators[named]; ok && len(items) > 0 {
				return sep.NewSet(sep.Unicode, items...)
			}
		}
		return nil, bigerr.ArgumentValueErrorf("unknown separator preset %q", named)
	}
	if cfg != nil {
		if items, ok := cfg.Separators["default"]; ok && len(items) > 0 {
			return sep.NewSet(sep.Unicode, items...)
		}
	}
	return sep.NamedUnicodeWhitespace, nil
}

func tabWidth() int {
	if cfg != nil && cfg.TabWidth > 0 {
		return cfg.TabWidth
	}
	return 8
}
