// Package netlist implements the free-form SPICE-like netlist grammar:
// comments, .model/.subckt directives, flat subcircuit expansion, and
// the R/C/L/V/I/D/M/Q element lines.
package netlist

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/gospice/gospice/pkg/spiceerr"
)

// Model is a named .model directive: a device type tag plus its
// key=value parameters.
type Model struct {
	Name   string
	Type   string // "D" (diode) or "NMOS"/"PMOS"
	Params map[string]float64
}

// Element is one parsed netlist line, still symbolic (node names, a
// model reference, raw waveform parameters) -- Netlist.BuildDevices
// resolves it into a concrete device.Device.
type Element struct {
	Type   string // first letter: R, C, L, V, I, D, M, Q
	Name   string
	Nodes  []string
	Value  float64
	G2     bool
	Model  string
	Params map[string]string
}

// Subckt is a .subckt ... .ends block: its own node formals and body
// lines, substituted flat into the caller at each X instantiation.
type Subckt struct {
	Name    string
	Ports   []string
	Body    []string
}

// Netlist is the parsed, subcircuit-expanded result: a flat element
// list plus the model table, ready for circuit.Build once each
// Element is turned into a device.Device.
type Netlist struct {
	Title    string
	Elements []Element
	Models   map[string]Model
}

// Parse reads a free-form, case-insensitive, line oriented netlist;
// % or * starts a comment; .control/.endc brackets an
// ignored block; .model defines a device model; .subckt/.ends defines
// a subcircuit, and X instances are expanded by flat substitution
// before the result is returned.
func Parse(input string) (*Netlist, error) {
	lines := splitLines(input)
	title := ""
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "*") {
		title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), "*"))
		lines = lines[1:]
	}

	subckts := map[string]*Subckt{}
	models := map[string]Model{}
	var topLevel []string

	inControl := false
	for i := 0; i < len(lines); i++ {
		line := stripComment(lines[i])
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if inControl {
			if lower == ".endc" {
				inControl = false
			}
			continue
		}
		if lower == ".control" {
			inControl = true
			continue
		}

		if strings.HasPrefix(lower, ".subckt") {
			sub, consumed, err := parseSubckt(lines, i)
			if err != nil {
				return nil, err
			}
			subckts[strings.ToLower(sub.Name)] = sub
			i += consumed
			continue
		}

		if strings.HasPrefix(lower, ".model") {
			model, err := parseModel(line)
			if err != nil {
				return nil, err
			}
			models[strings.ToLower(model.Name)] = model
			continue
		}

		if strings.HasPrefix(line, ".") {
			// Other directives (.op, .tran, .ac, .dc, .end, ...) are
			// consumed by the CLI command layer, not the core parser.
			continue
		}

		topLevel = append(topLevel, line)
	}

	elements, err := expand(topLevel, subckts, "")
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, errors.Wrap(spiceerr.ErrEmptyNetlist, "netlist.Parse")
	}

	return &Netlist{Title: title, Elements: elements, Models: models}, nil
}

func splitLines(input string) []string {
	return strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
}

func stripComment(line string) string {
	for _, marker := range []string{"*", "%"} {
		if idx := strings.Index(line, marker); idx == 0 {
			return ""
		} else if idx > 0 {
			line = line[:idx]
		}
	}
	return line
}

func parseSubckt(lines []string, start int) (*Subckt, int, error) {
	fields := strings.Fields(lines[start])
	if len(fields) < 2 {
		return nil, 0, errors.Wrapf(spiceerr.ErrInvalidFormat, ".subckt line %q", lines[start])
	}
	sub := &Subckt{Name: fields[1], Ports: fields[2:]}

	consumed := 0
	for j := start + 1; j < len(lines); j++ {
		consumed++
		line := strings.TrimSpace(stripComment(lines[j]))
		if line == "" {
			continue
		}
		if strings.EqualFold(line, ".ends") || strings.HasPrefix(strings.ToLower(line), ".ends") {
			return sub, consumed, nil
		}
		sub.Body = append(sub.Body, line)
	}
	return nil, 0, errors.Wrapf(spiceerr.ErrInvalidFormat, ".subckt %s: missing .ends", sub.Name)
}

func parseModel(line string) (Model, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Model{}, errors.Wrapf(spiceerr.ErrInvalidFormat, ".model line %q", line)
	}
	name := fields[1]
	rest := strings.Join(fields[2:], " ")
	openParen := strings.Index(rest, "(")
	mtype := rest
	paramStr := ""
	if openParen >= 0 {
		mtype = strings.TrimSpace(rest[:openParen])
		closeParen := strings.LastIndex(rest, ")")
		if closeParen < 0 {
			closeParen = len(rest)
		}
		paramStr = rest[openParen+1 : closeParen]
	}

	params := map[string]float64{}
	for _, kv := range splitKeyValues(paramStr) {
		v, err := ParseValue(kv[1])
		if err != nil {
			return Model{}, errors.Wrapf(err, ".model %s param %s", name, kv[0])
		}
		params[strings.ToUpper(kv[0])] = v
	}

	return Model{Name: name, Type: strings.ToUpper(mtype), Params: params}, nil
}

// splitKeyValues parses "key=value key2=value2" tokens, tolerating
// spaces around "=".
func splitKeyValues(s string) [][2]string {
	fields := strings.Fields(strings.ReplaceAll(s, "=", " = "))
	var out [][2]string
	for i := 0; i+2 < len(fields); i += 3 {
		if fields[i+1] == "=" {
			out = append(out, [2]string{fields[i], fields[i+2]})
		}
	}
	return out
}

// expand performs flat X-instance substitution: each X line's actual
// nodes replace the subcircuit's formal port names throughout its
// body, and every internal name (elements and internal nodes) is
// prefixed with the instance path so distinct instances never collide.
func expand(lines []string, subckts map[string]*Subckt, prefix string) ([]Element, error) {
	var out []Element
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		kind := strings.ToUpper(string(fields[0][0]))

		if kind == "X" {
			name := fields[0]
			if len(fields) < 3 {
				return nil, errors.Wrapf(spiceerr.ErrInvalidFormat, "subcircuit instance %q", line)
			}
			subName := fields[len(fields)-1]
			actualNodes := fields[1 : len(fields)-1]
			sub, ok := subckts[strings.ToLower(subName)]
			if !ok {
				return nil, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "unknown subcircuit %q", subName)
			}
			if len(actualNodes) != len(sub.Ports) {
				return nil, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "subcircuit %q: expected %d nodes, got %d", subName, len(sub.Ports), len(actualNodes))
			}
			portMap := map[string]string{}
			for i, port := range sub.Ports {
				portMap[port] = actualNodes[i]
			}

			instPrefix := prefix + name + "."
			rewritten := make([]string, len(sub.Body))
			for i, bodyLine := range sub.Body {
				rewritten[i] = rewriteInstance(bodyLine, portMap, instPrefix)
			}
			nested, err := expand(rewritten, subckts, instPrefix)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}

		elem, err := parseElement(kind, fields)
		if err != nil {
			return nil, err
		}
		elem.Name = prefix + elem.Name
		out = append(out, elem)
	}
	return out, nil
}

// rewriteInstance substitutes port names for their actual nodes and
// prefixes any non-port (internal) node so repeated instantiations of
// the same subcircuit don't collide. The element name is left as is;
// expand prefixes it when it parses the rewritten line.
func rewriteInstance(line string, portMap map[string]string, prefix string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return line
	}

	nodeCount := nodeFieldCount(fields)
	for i := 1; i <= nodeCount && i < len(fields); i++ {
		if node := fields[i]; node == "0" || strings.EqualFold(node, "gnd") {
			continue
		} else if actual, ok := portMap[fields[i]]; ok {
			fields[i] = actual
		} else {
			fields[i] = prefix + fields[i]
		}
	}
	return strings.Join(fields, " ")
}

func nodeFieldCount(fields []string) int {
	switch strings.ToUpper(string(fields[0][0])) {
	case "D":
		return 2
	case "M":
		return 4
	case "Q":
		return 3
	case "X":
		return len(fields) - 2
	default:
		return 2
	}
}

func parseElement(kind string, fields []string) (Element, error) {
	if len(fields) < 3 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "line %q", strings.Join(fields, " "))
	}
	name := fields[0]

	switch kind {
	case "R", "C":
		return parseRC(kind, name, fields)
	case "L":
		return parseSimpleValue(kind, name, fields, 2)
	case "V", "I":
		return parseSource(kind, name, fields)
	case "D":
		return parseDiode(name, fields)
	case "M":
		return parseMosfet(name, fields)
	case "Q":
		return parseBJT(name, fields)
	default:
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidFormat, "unsupported element kind %q", kind)
	}
}

func parseRC(kind, name string, fields []string) (Element, error) {
	if len(fields) < 4 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s: %s", kind, name)
	}
	nodes := fields[1:3]
	valueStr := fields[3]
	g2 := false
	if len(fields) > 4 && strings.EqualFold(fields[4], "g2") {
		g2 = true
	}
	value, err := ParseValue(valueStr)
	if err != nil {
		return Element{}, errors.Wrapf(err, "%s %s value", kind, name)
	}
	return Element{Type: kind, Name: name, Nodes: nodes, Value: value, G2: g2}, nil
}

func parseSimpleValue(kind, name string, fields []string, numNodes int) (Element, error) {
	if len(fields) < numNodes+2 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s: %s", kind, name)
	}
	nodes := fields[1 : numNodes+1]
	value, err := ParseValue(fields[numNodes+1])
	if err != nil {
		return Element{}, errors.Wrapf(err, "%s %s value", kind, name)
	}
	return Element{Type: kind, Name: name, Nodes: nodes, Value: value}, nil
}

func parseDiode(name string, fields []string) (Element, error) {
	if len(fields) < 4 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "D: %s", name)
	}
	return Element{Type: "D", Name: name, Nodes: fields[1:3], Model: fields[3]}, nil
}

func parseMosfet(name string, fields []string) (Element, error) {
	if len(fields) < 6 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "M: %s", name)
	}
	params := map[string]string{}
	for _, kv := range splitKeyValues(strings.Join(fields[6:], " ")) {
		params[strings.ToUpper(kv[0])] = kv[1]
	}
	return Element{Type: "M", Name: name, Nodes: fields[1:5], Model: fields[5], Params: params}, nil
}

func parseBJT(name string, fields []string) (Element, error) {
	if len(fields) < 4 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "Q: %s", name)
	}
	elem := Element{Type: "Q", Name: name, Nodes: fields[1:4]}
	if len(fields) > 4 {
		v, err := ParseValue(fields[4])
		if err == nil {
			elem.Value = v
		}
	}
	return elem, nil
}

func parseSource(kind, name string, fields []string) (Element, error) {
	if len(fields) < 4 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s: %s", kind, name)
	}
	nodes := fields[1:3]
	rest := strings.Join(fields[3:], " ")
	rest = strings.ReplaceAll(rest, "(", " ")
	rest = strings.ReplaceAll(rest, ")", " ")
	words := strings.Fields(rest)
	if len(words) == 0 {
		return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s %s: missing value", kind, name)
	}

	elem := Element{Type: kind, Name: name, Nodes: nodes, Params: map[string]string{}}

	switch strings.ToUpper(words[0]) {
	case "DC", "":
		offset := 0
		if strings.EqualFold(words[0], "DC") {
			offset = 1
		}
		if len(words) <= offset {
			return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s %s: missing DC value", kind, name)
		}
		v, err := ParseValue(words[offset])
		if err != nil {
			return Element{}, errors.Wrapf(err, "%s %s DC value", kind, name)
		}
		elem.Value = v
		elem.Params["type"] = "dc"
	case "SIN":
		elem.Params["type"] = "sin"
		elem.Params["args"] = strings.Join(words[1:], " ")
	case "PULSE":
		elem.Params["type"] = "pulse"
		elem.Params["args"] = strings.Join(words[1:], " ")
	case "PWL":
		elem.Params["type"] = "pwl"
		elem.Params["args"] = strings.Join(words[1:], " ")
	default:
		// Bare numeric value, e.g. "V1 in 0 5"
		v, err := ParseValue(words[0])
		if err != nil {
			return Element{}, errors.Wrapf(spiceerr.ErrInvalidElementFormat, "%s %s: unrecognized source spec %q", kind, name, words[0])
		}
		elem.Value = v
		elem.Params["type"] = "dc"
	}

	if ac := findACClause(fields); ac != "" {
		elem.Params["ac"] = ac
	}

	return elem, nil
}

// findACClause looks for a trailing "AC <mag> [phase]" clause after
// the primary DC/SIN/PULSE/PWL spec.
func findACClause(fields []string) string {
	for i, f := range fields {
		if strings.EqualFold(f, "AC") && i+1 < len(fields) {
			return strings.Join(fields[i+1:], " ")
		}
	}
	return ""
}
