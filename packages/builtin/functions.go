package builtin

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Func func(args []string) (any, error)

// WarnFunc receives placeholders that could not be expanded
type WarnFunc func(format string, args ...any)

type Registry struct {
	funcs    map[string]Func
	warnFunc WarnFunc
	now      func() time.Time
}

func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
		now:   time.Now,
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.funcs["now"] = r.funcNow
	r.funcs["timestamp"] = r.funcTimestamp
	r.funcs["timestampMs"] = r.funcTimestampMs
	r.funcs["date"] = r.funcDate
	r.funcs["uuid"] = funcUUID
	r.funcs["random"] = funcRandom
	r.funcs["randomString"] = funcRandomString
	r.funcs["base64"] = funcBase64
	r.funcs["urlEncode"] = funcURLEncode
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// SetWarnFunc sets a function to be called for unresolved placeholders
func (r *Registry) SetWarnFunc(fn WarnFunc) {
	r.warnFunc = fn
}

func (r *Registry) warn(format string, args ...any) {
	if r.warnFunc != nil {
		r.warnFunc(format, args...)
	}
}

var (
	funcCallPattern    = regexp.MustCompile(`^(\w+)\((.*)\)$`)
	placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)
)

// Call evaluates a single expression such as random(1, 6). ok is false when
// the expression is not a call to a registered function.
func (r *Registry) Call(expr string) (value any, ok bool, err error) {
	matches := funcCallPattern.FindStringSubmatch(expr)
	if matches == nil {
		return nil, false, nil
	}

	fn, found := r.funcs[matches[1]]
	if !found {
		return nil, false, nil
	}

	var args []string
	if matches[2] != "" {
		args = parseArgs(matches[2])
	}

	value, err = fn(args)
	return value, true, err
}

// Expand replaces every {{fn(args)}} placeholder in input. Placeholders that
// do not resolve are kept verbatim.
func (r *Registry) Expand(input string) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-2])

		value, ok, err := r.Call(expr)
		if !ok {
			r.warn("unresolved placeholder: %s", expr)
			return match
		}
		if err != nil {
			r.warn("placeholder %s failed: %v", expr, err)
			return match
		}
		return fmt.Sprintf("%v", value)
	})
}

func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inQuote && (ch == '"' || ch == '\'') {
			inQuote = true
			quoteChar = ch
		} else if inQuote && ch == quoteChar {
			inQuote = false
			quoteChar = 0
		} else if !inQuote && ch == ',' {
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func (r *Registry) funcNow(_ []string) (any, error) {
	return r.now().UTC().Format(time.RFC3339), nil
}

func (r *Registry) funcTimestamp(_ []string) (any, error) {
	return r.now().Unix(), nil
}

func (r *Registry) funcTimestampMs(_ []string) (any, error) {
	return r.now().UnixMilli(), nil
}

func (r *Registry) funcDate(args []string) (any, error) {
	layout := "2006-01-02"
	if len(args) >= 1 {
		layout = args[0]
	}
	return r.now().UTC().Format(layout), nil
}

func funcUUID(_ []string) (any, error) {
	return uuid.New().String(), nil
}

func funcRandom(args []string) (any, error) {
	min, max := 0, 100
	if len(args) >= 2 {
		var err error
		if min, err = strconv.Atoi(args[0]); err != nil {
			return nil, fmt.Errorf("random() min argument %q is not a valid integer", args[0])
		}
		if max, err = strconv.Atoi(args[1]); err != nil {
			return nil, fmt.Errorf("random() max argument %q is not a valid integer", args[1])
		}
	}
	if max < min {
		return nil, fmt.Errorf("random() max %d is less than min %d", max, min)
	}
	return rand.Intn(max-min+1) + min, nil
}

func funcRandomString(args []string) (any, error) {
	length := 16
	if len(args) >= 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return nil, fmt.Errorf("randomString() length argument %q is not a valid length", args[0])
		}
		length = v
	}
	return randomString(length, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"), nil
}

func funcBase64(args []string) (any, error) {
	if len(args) < 1 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString([]byte(args[0])), nil
}

func funcURLEncode(args []string) (any, error) {
	if len(args) < 1 {
		return "", nil
	}
	return url.QueryEscape(args[0]), nil
}

func randomString(length int, charset string) string {
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
