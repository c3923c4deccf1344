package resolver

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/latticeui/lattice/pkg/domain"
)

// tokenPattern matches $variable tokens inside strings.
var tokenPattern = regexp.MustCompile(`\$([a-zA-Z][a-zA-Z0-9]*)`)

// Substitute replaces $name tokens in a value using the variable
// context. Strings are scanned token by token; arrays and objects are
// walked element- and value-wise; other scalars pass through
// unchanged. A token whose variable is undefined stays literal in the
// output, so partial or preview variable sets still render something
// inspectable. Substitute never fails and performs no I/O.
func Substitute(value any, vars map[string]any) any {
	switch v := value.(type) {
	case string:
		return SubstituteString(v, vars)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = Substitute(elem, vars)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = Substitute(elem, vars)
		}
		return out
	default:
		return value
	}
}

// SubstituteString resolves every $name token in one string
// independently, so "text-$color bg-$bg" resolves both tokens.
func SubstituteString(s string, vars map[string]any) string {
	if len(vars) == 0 || !tokenPattern.MatchString(s) {
		return s
	}
	return tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		value, ok := vars[token[1:]]
		if !ok {
			return token
		}
		return stringify(value)
	})
}

// substituteProp applies substitution inside a prop value. Only the
// string, object and array variants can carry tokens.
func substituteProp(p domain.PropValue, vars map[string]any) domain.PropValue {
	switch p.Kind() {
	case domain.KindString:
		return domain.StringValue(SubstituteString(p.Str(), vars))
	case domain.KindObject:
		return domain.ObjectValue(Substitute(p.Object(), vars).(map[string]any))
	case domain.KindArray:
		return domain.ArrayValue(Substitute(p.Array(), vars).([]any))
	default:
		return p
	}
}

// stringify renders a variable value for splicing into a string.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		// Composite variable values splice in as compact JSON.
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
