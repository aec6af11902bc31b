package surface

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sgrReset ends every surface line so no styling survives past the frame.
const sgrReset = "\x1b[0m"

// Any escape sequence: CSI, OSC (BEL or ST terminated), or a two-byte ESC form.
const escapeSeq = `\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b[@-Z\\-_]`

var (
	escapeSeqPattern  = regexp.MustCompile(escapeSeq)
	leadingSeqPattern = regexp.MustCompile(`^(?:` + escapeSeq + `)`)
	sgrPattern        = regexp.MustCompile(`^\x1b\[[0-9;:]*m$`)
)

// sanitize removes terminal control from document text. With keepSGR set,
// colour and attribute sequences survive; anything that could move the
// cursor, retitle the window or talk to the terminal is always dropped.
func sanitize(s string, keepSGR bool) string {
	if !keepSGR {
		s = ansi.Strip(s)
	} else {
		s = escapeSeqPattern.ReplaceAllStringFunc(s, func(seq string) string {
			if sgrPattern.MatchString(seq) {
				return seq
			}
			return ""
		})
	}
	return stripControls(s)
}

// stripControls drops C0 controls other than newline and tab, plus DEL.
// ESC survives only as the lead byte of a kept SGR sequence.
func stripControls(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n' || c == '\t':
			b.WriteByte(c)
		case c == 0x1b:
			if loc := leadingSeqPattern.FindStringIndex(s[i:]); loc != nil {
				if seq := s[i : i+loc[1]]; sgrPattern.MatchString(seq) {
					b.WriteString(seq)
				}
				i += loc[1] - 1
			}
		case c < 0x20 || c == 0x7f:
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// confine fits rendered text into a width x any frame: tabs become spaces,
// each line is cut to width and terminated with a reset.
func confine(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if width > 0 && ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		lines[i] = line + sgrReset
	}
	return strings.Join(lines, "\n")
}
