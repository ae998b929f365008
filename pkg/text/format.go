package text

import (
	"fmt"
	"strconv"

	"github.com/ssargent/charseq/pkg/codec"
)

var (
	trueText  = FromString("true")
	falseText = FromString("false")
	nullText  = FromString("null")
)

// FormatBool returns "true" or "false".
func FormatBool(b bool) *Sequence {
	if b {
		return trueText
	}
	return falseText
}

// FormatChar returns a one-unit sequence holding c.
func FormatChar(c uint16) *Sequence {
	return &Sequence{units: []uint16{c}}
}

// FormatInt returns the base-10 representation of i.
func FormatInt(i int) *Sequence {
	return FromString(strconv.Itoa(i))
}

// ValueOf returns the text representation of v. A nil value renders as "null".
func ValueOf(v any) *Sequence {
	switch x := v.(type) {
	case nil:
		return nullText
	case *Sequence:
		if x == nil {
			return nullText
		}
		return x
	case string:
		return FromString(x)
	case bool:
		return FormatBool(x)
	case uint16:
		return FormatChar(x)
	case int:
		return FormatInt(x)
	case int32:
		return FormatInt(int(x))
	case int16:
		return FormatInt(int(x))
	case []uint16:
		return FromChars(x)
	case fmt.Stringer:
		return FromString(x.String())
	default:
		return FromString(fmt.Sprint(x))
	}
}

// HexString renders n bytes of src starting at off as an uppercase hex dump.
func HexString(src []byte, off, n int) (*Sequence, error) {
	s, err := codec.ToHexString(src, off, n)
	if err != nil {
		return nil, err
	}
	return FromString(s), nil
}
