// Package svgpath decodes SVG path data (the `d` attribute
// of a <path> element) into a list of instructions.
// Coordinates are kept as written: resolving relative
// commands is done by the svgdraw package.
package svgpath

// strategy describes how the arguments of a command are repeated.
// A coordinate sequence (M, L, H, V) is a run of groups of one unit,
// so both kinds of repetition share the same loop.
type strategy uint8

const (
	single   strategy = iota // no argument
	repeated                 // a run of groups, one instruction per group
)

// argument kinds, in the order they appear in a group
type argKind uint8

const (
	coordinate argKind = iota
	flag
)

type command struct {
	kind     InstructionType
	strategy strategy
	args     []argKind
}

var (
	pairArgs   = []argKind{coordinate, coordinate}
	doubleArgs = []argKind{coordinate, coordinate, coordinate, coordinate}
)

// commands maps the lowercase command letters to their description.
var commands = map[byte]command{
	'm': {Move, repeated, pairArgs},
	'z': {ClosePath, single, nil},
	'l': {Line, repeated, pairArgs},
	'h': {HorizontalLine, repeated, []argKind{coordinate}},
	'v': {VerticalLine, repeated, []argKind{coordinate}},
	'c': {Curve, repeated, []argKind{coordinate, coordinate, coordinate, coordinate, coordinate, coordinate}},
	's': {SmoothCurve, repeated, doubleArgs},
	'q': {QuadraticBezierCurve, repeated, doubleArgs},
	't': {SmoothQuadraticBezierCurve, repeated, pairArgs},
	'a': {EllipticalArc, repeated, []argKind{coordinate, coordinate, coordinate, flag, flag, coordinate, coordinate}},
}

// lookupCommand returns the command for the letter `c`,
// and true if it is an uppercase (absolute) letter.
func lookupCommand(c byte) (cmd command, absolute, ok bool) {
	absolute = 'A' <= c && c <= 'Z'
	if absolute {
		c += 'a' - 'A'
	}
	cmd, ok = commands[c]
	return cmd, absolute, ok
}

type parser struct {
	sc           scanner
	instructions Instructions
}

// Parse decodes the path data `d`.
// An empty (or blank) string is valid and returns an empty list.
// The returned error, if any, is a *SyntaxError.
func Parse(d string) (Instructions, error) {
	p := parser{sc: scanner{src: d}}
	p.skipWhitespace()
	for !p.sc.done() {
		if err := p.parseDrawto(); err != nil {
			return nil, err
		}
		p.skipWhitespace()
	}
	if len(p.instructions) != 0 && p.instructions[0].Type != Move {
		return nil, &SyntaxError{Offset: 0, Err: ErrMissingMoveTo}
	}
	return p.instructions, nil
}

// MustParse is like Parse but panics on invalid input.
// It is intended for static path data.
func MustParse(d string) Instructions {
	out, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return out
}

func (p *parser) parseDrawto() error {
	start := p.sc.offset()
	cmd, absolute, ok := lookupCommand(p.sc.peek())
	if !ok {
		return &SyntaxError{Offset: start, Err: ErrUnsupportedCommand}
	}
	p.sc.consume()

	if cmd.strategy == single {
		p.instructions = append(p.instructions, Instruction{Type: cmd.kind, Absolute: absolute})
		return nil
	}
	p.skipWhitespace()
	return p.parseRepeated(cmd, absolute)
}

// parseRepeated parses at least one group, then continues
// while numbers follow. The command letter is not repeated.
func (p *parser) parseRepeated(cmd command, absolute bool) error {
	for {
		data, err := p.parseGroup(cmd.args)
		if err != nil {
			return err
		}
		p.instructions = append(p.instructions, Instruction{Type: cmd.kind, Absolute: absolute, Data: data})
		p.skipOptionalSeparator()
		if !p.matchNumber() {
			return nil
		}
	}
}

// parseGroup reads the arguments of one instruction.
// Coordinates are separated by an optional comma_whitespace,
// but the first flag must be preceded by an explicit separator.
func (p *parser) parseGroup(args []argKind) ([]float64, error) {
	data := make([]float64, 0, len(args))
	for i, arg := range args {
		if i != 0 {
			if arg == flag && args[i-1] != flag {
				if err := p.parseCommaWhitespace(); err != nil {
					return nil, err
				}
			} else {
				p.skipOptionalSeparator()
			}
		}
		var (
			f   float64
			err error
		)
		if arg == flag {
			f, err = p.parseFlag()
		} else {
			f, err = p.parseNumber()
		}
		if err != nil {
			return nil, err
		}
		data = append(data, f)
	}
	return data, nil
}
