package pathgeom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Parse parses path data in the path mini-language:
//
//	[F0|F1] M x,y {command args...}
//
// An optional leading F0 selects the even-odd fill rule, F1 the non-zero
// rule. Upper-case commands take absolute coordinates, lower-case commands
// coordinates relative to the current point:
//
//	M/m x,y     start a new figure; further pairs are implicit line-tos
//	L/l x,y     line
//	H/h x       horizontal line
//	V/v y       vertical line
//	C/c x1,y1 x2,y2 x,y
//	            cubic Bézier
//	S/s x2,y2 x,y
//	            smooth cubic Bézier, whose first control point is the
//	            reflection of the previous cubic's second control point
//	Q/q x1,y1 x,y
//	            quadratic Bézier
//	A/a rx,ry rotation large-arc sweep x,y
//	            elliptical arc; the flags are 0 or 1, a sweep of 1 is
//	            clockwise
//	Z/z         close the current figure
//
// A command's arguments may repeat without repeating the command letter.
// Numbers may be separated by white space and at most one comma, and may be
// written as Infinity or NaN. All figures are filled.
//
// Errors are of type [*FormatError].
func Parse(data string) (*Geometry, error) {
	p := &parser{data: data, g: &Geometry{}}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.g, nil
}

// MustParse is like [Parse] but panics if data cannot be parsed. It is meant
// for path literals in code.
func MustParse(data string) *Geometry {
	g, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return g
}

type parser struct {
	data string
	pos  int
	g    *Geometry
	// The figure being built, or nil.
	fig *Figure
	cur Point
	// Offset of the most recently read number.
	numStart int
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return &FormatError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() error {
	if err := p.parseFillRule(); err != nil {
		return err
	}

	first := true
	for {
		cmd, ok, err := p.readCommand()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if first {
			if cmd != 'M' && cmd != 'm' {
				return p.errorf(p.pos-1, "path data must start with a move command, found %q", cmd)
			}
			first = false
		}
		rel := cmd >= 'a'

		switch cmd {
		case 'M', 'm':
			pt, err := p.readPoint(rel, false)
			if err != nil {
				return err
			}
			p.beginFigure(pt)
			err = p.repeat(func() error {
				pt, err := p.readPoint(rel, false)
				if err != nil {
					return err
				}
				p.lineTo(pt)
				return nil
			})
			if err != nil {
				return err
			}
		case 'L', 'l':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				pt, err := p.readPoint(rel, false)
				if err != nil {
					return err
				}
				p.lineTo(pt)
				return nil
			})
		case 'H', 'h':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				x, err := p.readNumber(false)
				if err != nil {
					return err
				}
				if rel {
					x += p.cur.X
				}
				p.lineTo(Pt(x, p.cur.Y))
				return nil
			})
		case 'V', 'v':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				y, err := p.readNumber(false)
				if err != nil {
					return err
				}
				if rel {
					y += p.cur.Y
				}
				p.lineTo(Pt(p.cur.X, y))
				return nil
			})
		case 'C', 'c':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				pts, err := p.readPoints(rel, 3)
				if err != nil {
					return err
				}
				p.add(CubicTo(pts[0], pts[1], pts[2]))
				return nil
			})
		case 'S', 's':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				p1 := p.smoothControlPoint()
				pts, err := p.readPoints(rel, 2)
				if err != nil {
					return err
				}
				p.add(CubicTo(p1, pts[0], pts[1]))
				return nil
			})
		case 'Q', 'q':
			p.ensureFigure()
			err = p.repeatOnce(func() error {
				pts, err := p.readPoints(rel, 2)
				if err != nil {
					return err
				}
				p.add(QuadTo(pts[0], pts[1]))
				return nil
			})
		case 'A', 'a':
			p.ensureFigure()
			err = p.repeatOnce(p.readArc(rel))
		case 'Z', 'z':
			p.finishFigure(true)
		default:
			return p.errorf(p.pos-1, "unknown command %q", cmd)
		}
		if err != nil {
			return err
		}
	}
	p.finishFigure(false)
	return nil
}

func (p *parser) parseFillRule() error {
	p.skipSpace()
	if p.pos >= len(p.data) || p.data[p.pos] != 'F' {
		return nil
	}
	p.pos++
	p.skipSpace()
	if p.pos >= len(p.data) {
		return p.errorf(p.pos, "missing fill rule")
	}
	switch p.data[p.pos] {
	case '0':
		p.g.FillRule = EvenOdd
	case '1':
		p.g.FillRule = Nonzero
	default:
		return p.errorf(p.pos, "fill rule must be 0 or 1")
	}
	p.pos++
	return nil
}

// repeat calls fn as long as another number follows.
func (p *parser) repeat(fn func() error) error {
	for {
		ok, err := p.isNumber(true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(); err != nil {
			return err
		}
	}
}

// repeatOnce calls fn at least once, then as long as another number follows.
func (p *parser) repeatOnce(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	return p.repeat(fn)
}

func (p *parser) readArc(rel bool) func() error {
	return func() error {
		w, err := p.readNumber(false)
		if err != nil {
			return err
		}
		h, err := p.readNumber(true)
		if err != nil {
			return err
		}
		rotation, err := p.readNumber(true)
		if err != nil {
			return err
		}
		largeArc, err := p.readFlag()
		if err != nil {
			return err
		}
		sweep, err := p.readFlag()
		if err != nil {
			return err
		}
		pt, err := p.readPoint(rel, true)
		if err != nil {
			return err
		}
		p.add(ArcTo(pt, Sz(w, h), rotation, largeArc, sweep))
		return nil
	}
}

func (p *parser) readFlag() (bool, error) {
	v, err := p.readNumber(true)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, p.errorf(p.numStart, "arc flag must be 0 or 1, found %g", v)
	}
}

func (p *parser) readCommand() (byte, bool, error) {
	if _, err := p.skipWhitespace(false); err != nil {
		return 0, false, err
	}
	if p.pos >= len(p.data) {
		return 0, false, nil
	}
	c := p.data[p.pos]
	if c >= utf8.RuneSelf {
		r, _ := utf8.DecodeRuneInString(p.data[p.pos:])
		return 0, false, p.errorf(p.pos, "unknown command %q", r)
	}
	p.pos++
	return c, true, nil
}

// readPoints reads n points. Only the first point may not be preceded by a
// comma.
func (p *parser) readPoints(rel bool, n int) ([3]Point, error) {
	var pts [3]Point
	for i := range n {
		pt, err := p.readPoint(rel, i > 0)
		if err != nil {
			return pts, err
		}
		pts[i] = pt
	}
	return pts, nil
}

func (p *parser) readPoint(rel, allowComma bool) (Point, error) {
	x, err := p.readNumber(allowComma)
	if err != nil {
		return Point{}, err
	}
	y, err := p.readNumber(true)
	if err != nil {
		return Point{}, err
	}
	if rel {
		x += p.cur.X
		y += p.cur.Y
	}
	return Pt(x, y), nil
}

// maxFastNumber is the length up to which plain integers, including their
// sign, are parsed without going through the general float parser.
const maxFastNumber = 8

func (p *parser) readNumber(allowComma bool) (float64, error) {
	ok, err := p.isNumber(allowComma)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, p.errorf(p.pos, "expected number")
	}

	start := p.pos
	p.numStart = start
	neg := false
	if c := p.data[p.pos]; c == '-' || c == '+' {
		neg = c == '-'
		p.pos++
	}
	plain := true
	switch {
	case strings.HasPrefix(p.data[p.pos:], "Infinity"):
		p.pos += len("Infinity")
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case strings.HasPrefix(p.data[p.pos:], "NaN"):
		p.pos += len("NaN")
		return math.NaN(), nil
	case p.pos < len(p.data) && (p.data[p.pos] == 'I' || p.data[p.pos] == 'N'):
		return 0, p.errorf(start, "malformed number")
	}
	p.skipDigits(false)
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		plain = false
		p.pos++
		p.skipDigits(false)
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		plain = false
		p.pos++
		p.skipDigits(true)
	}

	lexeme := p.data[start:p.pos]
	if plain && len(lexeme) <= maxFastNumber {
		digits := strings.TrimLeft(lexeme, "+-")
		if len(digits) == 0 {
			return 0, p.errorf(start, "malformed number %q", lexeme)
		}
		n := 0
		for i := 0; i < len(digits); i++ {
			n = n*10 + int(digits[i]-'0')
		}
		if neg {
			n = -n
		}
		return float64(n), nil
	}
	// The lexer only validates the lexeme; its result isn't correctly
	// rounded.
	if _, n := tdstrconv.ParseFloat([]byte(lexeme)); n == 0 || n != len(lexeme) {
		return 0, p.errorf(start, "malformed number %q", lexeme)
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, p.errorf(start, "malformed number %q", lexeme)
	}
	// Out of range values saturate to ±Infinity or underflow to ±0.
	return f, nil
}

func (p *parser) skipDigits(signAllowed bool) {
	if signAllowed && p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
		p.pos++
	}
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
}

// isNumber skips white space and reports whether a number follows. It is an
// error for a comma to be followed by anything but a number.
func (p *parser) isNumber(allowComma bool) (bool, error) {
	sawComma, err := p.skipWhitespace(allowComma)
	if err != nil {
		return false, err
	}
	if p.pos < len(p.data) {
		switch c := p.data[p.pos]; {
		case c == '.', c == '-', c == '+', c >= '0' && c <= '9', c == 'I', c == 'N':
			return true, nil
		}
	}
	if sawComma {
		return false, p.errorf(p.pos, "expected number after comma")
	}
	return false, nil
}

// skipWhitespace skips white space and, if allowComma is set, a single comma.
// It reports whether a comma was skipped.
func (p *parser) skipWhitespace(allowComma bool) (bool, error) {
	sawComma := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ',':
			if !allowComma {
				return false, p.errorf(p.pos, "unexpected comma")
			}
			sawComma = true
			allowComma = false
			p.pos++
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			p.pos++
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(p.data[p.pos:])
			if !unicode.IsSpace(r) {
				return sawComma, nil
			}
			p.pos += size
		default:
			return sawComma, nil
		}
	}
	return sawComma, nil
}

// skipSpace skips white space without treating commas specially.
func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		r, size := utf8.DecodeRuneInString(p.data[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) beginFigure(pt Point) {
	p.finishFigure(false)
	p.fig = &Figure{Start: pt, Filled: true}
	p.cur = pt
}

// ensureFigure starts an implicit figure at the current point if there is no
// figure being built, which happens after a Z.
func (p *parser) ensureFigure() {
	if p.fig == nil {
		p.fig = &Figure{Start: p.cur, Filled: true}
	}
}

func (p *parser) finishFigure(closed bool) {
	if p.fig == nil {
		return
	}
	if closed {
		p.fig.Closed = true
		p.cur = p.fig.Start
	}
	p.g.Figures = append(p.g.Figures, *p.fig)
	p.fig = nil
}

func (p *parser) add(s Segment) {
	p.fig.Segments = append(p.fig.Segments, s)
	p.cur = s.Points[len(s.Points)-1]
}

func (p *parser) lineTo(pt Point) {
	p.add(LineTo(pt))
}

// smoothControlPoint returns the reflection of the previous cubic's second
// control point about the current point, or the current point if the previous
// segment isn't a cubic.
func (p *parser) smoothControlPoint() Point {
	segs := p.fig.Segments
	if len(segs) > 0 && segs[len(segs)-1].Kind == CubicSegment {
		c2 := segs[len(segs)-1].Points[1]
		return p.cur.Translate(p.cur.Sub(c2))
	}
	return p.cur
}
