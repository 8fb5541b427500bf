package binding

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// keyOptionPrefix marks the options.txt lines that hold key bindings,
// e.g. "key_key.forward:key.keyboard.w".
const keyOptionPrefix = "key_"

// ErrMalformedLine is returned for a key binding line that has no value
// separator or no action name.
var ErrMalformedLine = errors.New("malformed key binding line")

// Entry is one key binding line of an options file.
type Entry struct {
	// Action is the option name without the "key_" prefix, e.g. "key.forward".
	Action string `json:"action" yaml:"action"`
	Value  string `json:"value" yaml:"value"`
}

// Resolved is an Entry together with its resolved binding.
type Resolved struct {
	Entry
	Binding Binding
}

// Options holds the key bindings of an options file in file order.
type Options struct {
	Entries []Entry
}

// LoadOptions reads and parses the options file at path.
func LoadOptions(path string) (*Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open options file %s", path)
	}
	defer f.Close()

	opts, err := ParseOptions(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse options file %s", path)
	}

	return opts, nil
}

// ParseOptions reads "name:value" lines and keeps those whose name starts
// with "key_". Other options and blank lines are skipped. A later line for
// the same action replaces the earlier value in place.
func ParseOptions(r io.Reader) (*Options, error) {
	opts := &Options{}
	index := map[string]int{}

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if n == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if !strings.HasPrefix(line, keyOptionPrefix) {
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		action := strings.TrimPrefix(name, keyOptionPrefix)
		if !ok || action == "" {
			return nil, errors.WithHint(
				errors.Wrapf(ErrMalformedLine, "line %d %q", n, line),
				"key bindings are written as key_<action>:<value>",
			)
		}

		e := Entry{Action: action, Value: value}
		if i, seen := index[action]; seen {
			opts.Entries[i] = e
			continue
		}
		index[action] = len(opts.Entries)
		opts.Entries = append(opts.Entries, e)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read options")
	}

	return opts, nil
}

// Get returns the stored value for action, e.g. "key.hotbar.1".
func (o *Options) Get(action string) (string, bool) {
	for _, e := range o.Entries {
		if e.Action == action {
			return e.Value, true
		}
	}
	return "", false
}

// Resolve resolves every binding in file order.
func (o *Options) Resolve() []Resolved {
	out := make([]Resolved, 0, len(o.Entries))
	for _, e := range o.Entries {
		out = append(out, Resolved{Entry: e, Binding: Resolve(e.Value)})
	}
	return out
}
