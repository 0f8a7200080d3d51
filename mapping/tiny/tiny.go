// Package tiny reads Tiny v2 mapping files into a mapping table.
//
// Tiny v2 is a tab-separated format:
//
//	tiny	2	0	mojang+yarn	spigot
//	c	net/minecraft/world/level/Level	net/minecraft/world/level/World
//		f	Ljava/util/List;	players	x
//		m	()J	getSeed	A
//			p	1	flag
//
// The header lists the namespaces. Member descriptors use the first
// namespace. Parameters, local variables and comments are skipped; the
// resolver has no use for them.
package tiny

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"reflection-remapper/internal/common"
	"reflection-remapper/mapping"
)

// ErrFormat is returned for input that is not valid Tiny v2.
var ErrFormat = errors.New("malformed tiny mappings")

// maxLine bounds a single line; comments in real files can be long.
const maxLine = 16 << 20

// ReadFile reads a Tiny v2 file from path.
func ReadFile(path string) (*mapping.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tiny mappings %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Read parses Tiny v2 mappings from r.
func Read(r io.Reader) (*mapping.Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}

	header := strings.Split(sc.Text(), "\t")
	if len(header) < 5 || header[0] != "tiny" || header[1] != "2" {
		return nil, fmt.Errorf("%w: not a tiny v2 header: %q", ErrFormat, sc.Text())
	}

	namespaces := header[3:]
	b := mapping.NewBuilder(namespaces...)

	var (
		class    *mapping.ClassBuilder
		escaped  bool
		inHeader = true
		lineNo   = 1
	)

	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth := len(line) - len(strings.TrimLeft(line, "\t"))
		cols := strings.Split(line[depth:], "\t")

		if inHeader && depth == 1 && cols[0] != "f" && cols[0] != "m" {
			if cols[0] == "escaped-names" {
				escaped = true
			}

			continue
		}

		inHeader = false

		switch {
		case depth == 0 && cols[0] == "c":
			names, err := columns(cols[1:], len(namespaces), escaped)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			for i := range names {
				names[i] = common.DotName(names[i])
			}

			class = b.Class(names...)

		case depth == 1 && (cols[0] == "f" || cols[0] == "m"):
			if class == nil {
				return nil, fmt.Errorf("%w: line %d: member outside of a class", ErrFormat, lineNo)
			}

			if len(cols) < 3 {
				return nil, fmt.Errorf("%w: line %d: member without names", ErrFormat, lineNo)
			}

			names, err := columns(cols[2:], len(namespaces), escaped)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

			if cols[0] == "f" {
				class.Field(cols[1], names...)
			} else {
				class.Method(cols[1], names...)
			}

		case depth == 0:
			return nil, fmt.Errorf("%w: line %d: unknown section %q", ErrFormat, lineNo, cols[0])
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return b.Build()
}

// columns pads missing trailing names and applies escaping.
func columns(cols []string, n int, escaped bool) ([]string, error) {
	if len(cols) > n {
		return nil, fmt.Errorf("%w: expected %d names, got %d", ErrFormat, n, len(cols))
	}

	out := make([]string, n)
	for i, c := range cols {
		if escaped {
			c = unescape(c)
		}

		out[i] = c
	}

	return out, nil
}

var unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r", `\t`, "\t", `\0`, "\x00")

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	return unescaper.Replace(s)
}
