package resolve

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spachava753/podkit/pod"
)

// Identifier is a loosely-typed reference to a user or chat.
//
// The variants are Current, Null, ID, Key, Email, Username, Entity and Record.
// A nil Identifier means the same as Current.
type Identifier interface {
	isIdentifier()
}

type current struct{}

type null struct{}

// ID is a numeric user id.
type ID int64

// Key is a string handled by the resolver's default string lookup: email for
// users, stream id for chats.
type Key string

// Email is an email address. Only user resolvers accept it.
type Email string

// Username is a pod-local username. Only user resolvers accept it.
type Username string

// Entity wraps an already-resolved object such as *pod.User or *pod.Chat.
type Entity struct {
	Value any
}

// Record is a plain key/value record. It may carry an identifier under the
// resolver's record key.
type Record map[string]any

func (current) isIdentifier()  {}
func (null) isIdentifier()     {}
func (ID) isIdentifier()       {}
func (Key) isIdentifier()      {}
func (Email) isIdentifier()    {}
func (Username) isIdentifier() {}
func (Entity) isIdentifier()   {}
func (Record) isIdentifier()   {}

// Current selects the identity that owns the connection.
func Current() Identifier { return current{} }

// Null is an explicit "no value". It always resolves to absent.
func Null() Identifier { return null{} }

// IsCurrent reports whether id selects the current identity.
func IsCurrent(id Identifier) bool {
	if id == nil {
		return true
	}
	_, ok := id.(current)
	return ok
}

// IsNull reports whether id is an explicit null.
func IsNull(id Identifier) bool {
	_, ok := id.(null)
	return ok
}

// Field returns the identifier stored under key, normalized with FromValue.
// A missing key yields Null.
func (r Record) Field(key string) (Identifier, error) {
	v, ok := r[key]
	if !ok {
		return Null(), nil
	}
	return FromValue(v)
}

// FromValue normalizes a loosely-typed value into an Identifier.
//
//   - nil → Null
//   - Identifier → itself
//   - integer kinds, integral float64, json.Number → ID
//   - string → Key (blank → Null)
//   - map[string]any → Record
//   - anything else → Entity, type-checked at resolution time
func FromValue(v any) (Identifier, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Identifier:
		return x, nil
	case string:
		x = strings.TrimSpace(x)
		if x == "" {
			return Null(), nil
		}
		return Key(x), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return nil, pod.InvalidArgument("identifier %q is not an integer", x.String())
		}
		return ID(n), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, pod.InvalidArgument("identifier %v is not an integer", x)
		}
		if x >= math.MaxInt64 || x < math.MinInt64 {
			return nil, pod.InvalidArgument("identifier %v overflows int64", x)
		}
		return ID(int64(x)), nil
	case map[string]any:
		return Record(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ID(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, pod.InvalidArgument("identifier %d overflows int64", u)
		}
		return ID(int64(u)), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
	}
	return Entity{Value: v}, nil
}

// ParseIdentifier reads an identifier typed by a person.
//
// "" selects Current, "null" selects Null, all digits select ID, and the
// prefixes "id:", "email:", "username:" and "key:" select a variant
// explicitly. Anything else is a Key.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Current(), nil
	}
	if strings.EqualFold(s, "null") {
		return Null(), nil
	}

	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(prefix) {
		case "id":
			n, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, pod.InvalidArgument("invalid numeric id %q", rest)
			}
			return ID(n), nil
		case "email":
			return nonBlank(Email(rest), rest, "email")
		case "username":
			return nonBlank(Username(rest), rest, "username")
		case "key":
			return nonBlank(Key(rest), rest, "key")
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(n), nil
	}
	return Key(s), nil
}

func nonBlank(id Identifier, value string, what string) (Identifier, error) {
	if value == "" {
		return nil, pod.InvalidArgument("%s must not be blank", what)
	}
	return id, nil
}

// Describe renders id for logs and error messages.
func Describe(id Identifier) string {
	switch v := id.(type) {
	case nil, current:
		return "current identity"
	case null:
		return "null"
	case ID:
		return fmt.Sprintf("id %d", int64(v))
	case Key:
		return fmt.Sprintf("key %q", string(v))
	case Email:
		return fmt.Sprintf("email %q", string(v))
	case Username:
		return fmt.Sprintf("username %q", string(v))
	case Entity:
		return fmt.Sprintf("entity %T", v.Value)
	case Record:
		return "record"
	default:
		return fmt.Sprintf("%T", id)
	}
}
