package binder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leg100/imbinder/internal/key"
)

// DefaultBindingsFile is the bindings file used when no path is given.
const DefaultBindingsFile = "ImInputBinderBindings.iib"

// Bindings file format:
//
//	"IIB" version(1 byte) { name NUL decimal-key-code ";" }
//
// Records are written in action name order and run to the end of the file.
const (
	magic   = "IIB"
	version = 1

	nameTerminator = 0
	keyTerminator  = ';'
)

var (
	ErrBadHeader          = errors.New("not a bindings file")
	ErrUnsupportedVersion = errors.New("unsupported bindings file version")
	ErrMalformedRecord    = errors.New("malformed bindings record")
)

// Save writes the key of every action to w.
func (r *Registry) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(magic)
	bw.WriteByte(version)
	for _, name := range r.names() {
		bw.WriteString(name)
		bw.WriteByte(nameTerminator)
		bw.WriteString(strconv.Itoa(int(r.actions[name].Key)))
		bw.WriteByte(keyTerminator)
	}
	// bufio.Writer retains the first write error and returns it from Flush.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing bindings: %w", err)
	}
	r.logger.Debug("saved bindings", "actions", len(r.actions))
	return nil
}

// Load reads bindings from r and assigns each key to the action with the
// recorded name. Records naming unregistered actions are skipped.
//
// A final record missing its ';' is still applied. Input ending part way
// through a name, or straight after one, ends the bindings without error.
// Key codes are read like C's strtol: leading whitespace and a sign are
// allowed and anything after the digits is ignored.
//
// Load is not transactional: if it fails part way through, keys assigned from
// earlier records remain assigned.
func (r *Registry) Load(rd io.Reader) error {
	br := bufio.NewReader(rd)

	header := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(br, header[:len(magic)]); err != nil {
		return headerError(err, ErrBadHeader)
	}
	if string(header[:len(magic)]) != magic {
		return ErrBadHeader
	}
	if _, err := io.ReadFull(br, header[len(magic):]); err != nil {
		return headerError(err, ErrUnsupportedVersion)
	}
	if header[len(magic)] != version {
		return ErrUnsupportedVersion
	}

	var loaded, skipped int
	for {
		name, err := br.ReadString(nameTerminator)
		if err == io.EOF {
			break
		}
		if err != nil {
			return readError(err)
		}
		code, err := br.ReadString(keyTerminator)
		last := err == io.EOF
		if last && code == "" {
			break
		}
		if err != nil && !last {
			return readError(err)
		}
		name = name[:len(name)-1]
		code = strings.TrimSuffix(code, string(rune(keyTerminator)))

		parsed, err := parseCode(code)
		if err != nil {
			return fmt.Errorf("%w: key code %q of %q: %w", ErrMalformedRecord, code, name, err)
		}
		if e, ok := r.actions[name]; ok {
			e.Key = parsed
			loaded++
		} else {
			r.logger.Debug("skipping binding for unknown action", "action", name)
			skipped++
		}
		if last {
			break
		}
	}
	r.logger.Debug("loaded bindings", "loaded", loaded, "skipped", skipped)
	return nil
}

// parseCode parses the leading decimal integer of s, after any whitespace.
func parseCode(s string) (key.Key, error) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return key.None, errors.New("no digits")
	}
	code, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return key.None, err
	}
	return key.Key(code), nil
}

// headerError returns sentinel if the header is cut short, and otherwise the
// cause of the failed read.
func headerError(err, sentinel error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return sentinel
	}
	return readError(err)
}

func readError(err error) error {
	return fmt.Errorf("reading bindings: %w", err)
}

// SaveFile saves bindings to the file at path, creating or truncating it. An
// empty path means DefaultBindingsFile.
func (r *Registry) SaveFile(path string) (err error) {
	if path == "" {
		path = DefaultBindingsFile
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return r.Save(f)
}

// LoadFile loads bindings from the file at path. An empty path means
// DefaultBindingsFile.
func (r *Registry) LoadFile(path string) error {
	if path == "" {
		path = DefaultBindingsFile
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.Load(f)
}
