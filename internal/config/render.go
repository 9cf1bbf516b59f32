package config

import (
	"fmt"
	"sort"
	"strings"
)

const updateMarker = "# Added by config update"

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# tabmd configuration (TOML)\n")

	top, sections, order := splitSections(GetConfigOptions())
	for _, o := range top {
		writeTOMLOption(&b, o.Key, o.Default, o.Comment)
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o.Key, o.Default, o.Comment)
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// UpdateTOML merges defaults into an existing TOML string and comments out
// unknown keys. Missing keys of a section that already exists are added to
// that section so the result stays valid TOML.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	known := make(map[string]bool)
	for _, o := range GetConfigOptions() {
		known[o.Key] = true
	}

	existingKeys := make(map[string]bool)
	sectionEnd := map[string]int{"": 0}
	currentSection := ""
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		switch {
		case trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";"):
			out = append(out, line)
			continue
		case strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]"):
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			sectionEnd[currentSection] = len(out)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		existingKeys[fullKey] = true
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
		} else {
			out = append(out, line)
		}
		sectionEnd[currentSection] = len(out)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range GetConfigOptions() {
		if !existingKeys[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	top, sections, order := splitSections(missing)
	inserts := make(map[int][]string)
	var appended []string
	if len(top) > 0 {
		block := []string{updateMarker}
		for _, o := range top {
			writeTOMLOptionLines(&block, o.Key, o.Default, o.Comment)
		}
		inserts[sectionEnd[""]] = append(inserts[sectionEnd[""]], block...)
	}
	for _, section := range order {
		block := []string{updateMarker}
		if _, present := sectionEnd[section]; !present {
			block = append(block, "["+section+"]")
		}
		for _, o := range sections[section] {
			writeTOMLOptionLines(&block, o.Key, o.Default, o.Comment)
		}
		if at, present := sectionEnd[section]; present {
			inserts[at] = append(inserts[at], block...)
		} else {
			appended = append(appended, block...)
		}
	}

	positions := make([]int, 0, len(inserts))
	for at := range inserts {
		positions = append(positions, at)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(positions)))
	for _, at := range positions {
		tail := append(append([]string{}, inserts[at]...), out[at:]...)
		out = append(out[:at], tail...)
	}
	if len(appended) > 0 {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, appended...)
	}
	return strings.Join(out, "\n"), true
}

// splitSections groups dotted keys by their first segment, preserving order.
func splitSections(opts []ConfigOption) (top []ConfigOption, sections map[string][]ConfigOption, order []string) {
	sections = make(map[string][]ConfigOption)
	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			top = append(top, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		section := parts[0]
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}
	return top, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	var lines []string
	writeTOMLOptionLines(&lines, key, value, comment)
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
}

func writeTOMLOptionLines(lines *[]string, key string, value any, comment string) {
	if comment != "" {
		*lines = append(*lines, "# "+comment)
	}
	switch v := value.(type) {
	case string:
		*lines = append(*lines, fmt.Sprintf("%s = %q", key, v), "")
	case bool, int, int64, float64:
		*lines = append(*lines, fmt.Sprintf("%s = %v", key, v), "")
	}
}
