// Package stomp encodes and decodes STOMP 1.2 frames carried in WebSocket
// text messages.
package stomp

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
)

// Frame is a single STOMP frame.
type Frame struct {
	Command string
	Headers map[string]string
	Body    []byte
}

// NewFrame builds a frame from alternating header name/value pairs.
func NewFrame(command string, kv ...string) Frame {
	f := Frame{Command: command, Headers: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		f.Headers[kv[i]] = kv[i+1]
	}
	return f
}

// Header returns the value of the named header.
func (f Frame) Header(name string) string {
	return f.Headers[name]
}

// escapes reports whether header escaping applies to the command.
func escapes(command string) bool {
	return command != CommandConnect && command != CommandConnected
}

var (
	headerEscaper   = strings.NewReplacer("\\", "\\\\", "\r", "\\r", "\n", "\\n", ":", "\\c")
	headerUnescaper = strings.NewReplacer("\\r", "\r", "\\n", "\n", "\\c", ":", "\\\\", "\\")
)

// Encode renders the frame. Headers are written in sorted order.
func (f Frame) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(f.Command)
	buf.WriteByte(eol)

	names := make([]string, 0, len(f.Headers))
	for name := range f.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	esc := escapes(f.Command)
	for _, name := range names {
		value := f.Headers[name]
		if esc {
			name, value = headerEscaper.Replace(name), headerEscaper.Replace(value)
		}
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(value)
		buf.WriteByte(eol)
	}
	if len(f.Body) > 0 {
		if _, ok := f.Headers[HeaderContentLength]; !ok {
			buf.WriteString(HeaderContentLength + ":" + strconv.Itoa(len(f.Body)))
			buf.WriteByte(eol)
		}
	}
	buf.WriteByte(eol)
	buf.Write(f.Body)
	buf.WriteByte(nullByte)
	return buf.Bytes()
}

// Decode parses every frame in data. Heart-beat EOLs between frames are
// skipped, so a message holding only EOLs yields no frames.
func Decode(data []byte) ([]Frame, error) {
	var frames []Frame
	for {
		data = skipEOL(data)
		if len(data) == 0 {
			return frames, nil
		}
		f, rest, err := decodeOne(data)
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
		data = rest
	}
}

func skipEOL(data []byte) []byte {
	for len(data) > 0 && (data[0] == '\n' || data[0] == '\r') {
		data = data[1:]
	}
	return data
}

func readLine(data []byte) (line, rest []byte, ok bool) {
	i := bytes.IndexByte(data, eol)
	if i < 0 {
		return nil, nil, false
	}
	line = bytes.TrimSuffix(data[:i], []byte{'\r'})
	return line, data[i+1:], true
}

func decodeOne(data []byte) (Frame, []byte, error) {
	line, data, ok := readLine(data)
	if !ok || len(line) == 0 {
		return Frame{}, nil, ErrMissingCommand
	}
	f := Frame{Command: string(line), Headers: make(map[string]string)}
	esc := escapes(f.Command)

	for {
		line, data, ok = readLine(data)
		if !ok {
			return Frame{}, nil, ErrMalformedHeader
		}
		if len(line) == 0 {
			break
		}
		name, value, found := strings.Cut(string(line), ":")
		if !found {
			return Frame{}, nil, ErrMalformedHeader
		}
		if esc {
			name, value = headerUnescaper.Replace(name), headerUnescaper.Replace(value)
		}
		// The first occurrence of a repeated header wins.
		if _, dup := f.Headers[name]; !dup {
			f.Headers[name] = value
		}
	}

	if cl, ok := f.Headers[HeaderContentLength]; ok {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 || n >= len(data) || data[n] != nullByte {
			return Frame{}, nil, ErrBadContentLength
		}
		f.Body = data[:n]
		return f, data[n+1:], nil
	}

	end := bytes.IndexByte(data, nullByte)
	if end < 0 {
		return Frame{}, nil, ErrUnterminated
	}
	f.Body = data[:end]
	return f, data[end+1:], nil
}
