// File: effectlist.go
// Role: parses the `{Name, Name(arg), Name(arg1,arg2)}` set-literal
// grammar shared by structParams/attrParams/dyadicParams/
// attrInteractionParams (spec §6).
package estconfig

import "strings"

// parseEffectList parses one set-literal value into its EffectRef
// entries. value must be the part after "=", braces included.
func parseEffectList(value string, line int) ([]EffectRef, error) {
	if !strings.HasPrefix(value, "{") || !strings.HasSuffix(value, "}") {
		return nil, &SyntaxError{Line: line, Msg: "expected a {...} set literal, got " + value}
	}
	inner := strings.TrimSpace(value[1 : len(value)-1])
	if inner == "" {
		return nil, nil
	}

	var refs []EffectRef
	for _, item := range splitTopLevel(inner) {
		ref, err := parseEffectItem(strings.TrimSpace(item), line)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// splitTopLevel splits s on commas that are not nested inside
// parentheses, so "GeoDistance(lat,long), Match(faction)" splits into
// two items rather than three.
func splitTopLevel(s string) []string {
	var items []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, s[start:i])
				start = i + 1
			}
		}
	}
	items = append(items, s[start:])

	return items
}

// parseEffectItem parses one "Name" or "Name(arg1,arg2,...)" item.
func parseEffectItem(item string, line int) (EffectRef, error) {
	open := strings.IndexByte(item, '(')
	if open < 0 {
		if item == "" {
			return EffectRef{}, &SyntaxError{Line: line, Msg: "empty effect name in set literal"}
		}

		return EffectRef{Name: item}, nil
	}
	if !strings.HasSuffix(item, ")") {
		return EffectRef{}, &SyntaxError{Line: line, Msg: "unmatched '(' in effect " + item}
	}

	name := strings.TrimSpace(item[:open])
	argsRaw := item[open+1 : len(item)-1]
	var args []string
	for _, a := range strings.Split(argsRaw, ",") {
		args = append(args, strings.TrimSpace(a))
	}

	return EffectRef{Name: name, Args: args}, nil
}
