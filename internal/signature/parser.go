package signature

import (
	"fmt"
	"regexp"
	"strings"
)

// headerMarker opens every plugin header line.
const headerMarker = "#[plugin]"

// headerRE matches the whole header line: the marker, the plugin's exported
// name, a colon, an optional comma-separated argument type list followed by
// an arrow, and the return type. Anchored at both ends; trailing text is a
// parse failure.
var headerRE = regexp.MustCompile(`^#\[plugin\] (?P<name>\w+) : ((?P<args>[\w, ]+) -> )?(?P<ret>\w+)$`)

// ParseError reports a plugin header the host could not understand.
type ParseError struct {
	Header string // the offending line, when the line itself is malformed
	Token  string // the offending type token, when the grammar matched
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("unknown plugin type %q", e.Token)
	}
	return fmt.Sprintf("malformed plugin header %q", e.Header)
}

// ParseHeader parses one plugin header line into a Signature.
//
// No arity cap is applied here: a header declaring three arguments is
// syntactically valid and parses, and is rejected later by the invoker's
// capability set.
func ParseHeader(line string) (*Signature, error) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return nil, &ParseError{Header: line}
	}

	name := m[headerRE.SubexpIndex("name")]
	rawArgs := m[headerRE.SubexpIndex("args")]
	rawRet := m[headerRE.SubexpIndex("ret")]

	var args []ScalarType
	if rawArgs != "" {
		for _, tok := range strings.Split(rawArgs, ", ") {
			t, err := ParseScalarType(tok)
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}
	}

	ret, err := ParseScalarType(rawRet)
	if err != nil {
		return nil, err
	}

	return &Signature{Name: name, Args: args, Return: ret}, nil
}
