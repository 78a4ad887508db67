package formatter

import (
	"bytes"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/guilog/guilog/core"
	"github.com/guilog/guilog/syserr"
)

// DefaultTimestampFormat is the local wall-clock layout used when
// Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000000"

// ColorPair holds the escape attributes for one severity. Label covers
// the "[APP] [timestamp]:" segment, Message covers the rest of the line.
type ColorPair struct {
	Label   *color.Color
	Message *color.Color
}

// levelColors is the fixed severity-to-color table.
var levelColors = [...]ColorPair{
	core.TraceLevel: {
		Label:   color.New(color.BgWhite, color.FgBlack),
		Message: color.New(color.FgWhite),
	},
	core.InfoLevel: {
		Label:   color.New(color.BgGreen, color.FgBlack),
		Message: color.New(color.FgGreen),
	},
	core.WarnLevel: {
		Label:   color.New(color.BgYellow, color.FgBlack),
		Message: color.New(color.FgYellow),
	},
	core.FailLevel: {
		Label:   color.New(color.BgRed, color.FgHiWhite),
		Message: color.New(color.FgRed),
	},
}

func init() {
	// The sink decides whether escapes render, not the environment the
	// test or host process happens to run in, so the attributes are
	// forced on and gated by Config.Color instead of color.NoColor.
	for _, pair := range levelColors {
		pair.Label.EnableColor()
		pair.Message.EnableColor()
	}
}

// PairFor returns the color pair for a level.
func PairFor(level core.Level) ColorPair {
	if int(level) < len(levelColors) && level >= 0 {
		return levelColors[level]
	}
	return levelColors[core.TraceLevel]
}

// Text formats log entries as tagged, timestamped console lines
type Text struct {
	Config
}

// NewText creates a new text formatter
func NewText(cfg Config) *Text {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &Text{Config: cfg}
}

// Format formats an entry as text
func (f *Text) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatEntry writes the formatted entry into the given buffer: the
// application line, then the system line when an OS error code is set.
func (f *Text) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	pair := PairFor(entry.Level)
	stamp := entry.Time.Format(f.TimestampFormat)

	f.writeLine(buf, pair, "[APP]", stamp, entry.Message+".")

	if entry.SysErr != 0 {
		msg := strings.TrimRight(syserr.Message(syserr.Code(entry.SysErr)), "\r\n")
		f.writeLine(buf, pair, "[SYS]", stamp, msg)
	}
}

func (f *Text) writeLine(buf *bytes.Buffer, pair ColorPair, tag, stamp, msg string) {
	if f.Color {
		buf.WriteString(pair.Label.Sprintf("%s [%s]:", tag, stamp))
		buf.WriteByte(' ')
		buf.WriteString(pair.Message.Sprint(msg))
	} else {
		buf.WriteString(tag)
		buf.WriteString(" [")
		buf.WriteString(stamp)
		buf.WriteString("]: ")
		buf.WriteString(msg)
	}
	buf.WriteByte('\n')
}

// Timestamp formats t the way the formatter stamps its lines. Exposed
// for callers that need to reproduce the stamp, such as tests.
func (f *Text) Timestamp(t time.Time) string {
	return t.Format(f.TimestampFormat)
}
