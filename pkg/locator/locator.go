// Package locator builds deterministic, hierarchical kebab-case
// identifiers for UI components, intended to back end-to-end test
// locators. Identifiers compose from an optional parent chain, a
// required base name, an optional collection index, and an optional
// sub-element name.
package locator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odvcencio/pinpoint/pkg/errors"
)

// Input holds the naming segments for one identifier. Base is
// required; everything else is optional. A nil Index is absent; a
// pointer to zero is present (index 0 is a valid first sibling).
// Sub may be a string, a non-negative integer of any Go kind, or a
// fmt.Stringer.
type Input struct {
	Parent string
	Base   string
	Index  *int
	Sub    any
}

// Idx returns a pointer to i, for filling Input.Index inline.
func Idx(i int) *int {
	return &i
}

// Build joins the present segments of in, in Parent/Base/Index/Sub
// order, into one kebab-case identifier. Absent segments contribute
// no separator and no placeholder. The same input always produces
// the same output.
func Build(in Input) (string, error) {
	if Kebab(in.Base) == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "base segment is empty after normalization").
			WithContext("base", in.Base)
	}
	if in.Index != nil && *in.Index < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "index must be non-negative").
			WithContext("index", *in.Index)
	}

	segments := make([]string, 0, 4)
	if in.Parent != "" {
		segments = append(segments, in.Parent)
	}
	segments = append(segments, in.Base)
	if in.Index != nil {
		segments = append(segments, strconv.Itoa(*in.Index))
	}
	if in.Sub != nil {
		sub, err := subText(in.Sub)
		if err != nil {
			return "", err
		}
		segments = append(segments, sub)
	}

	return Kebab(strings.Join(segments, "-")), nil
}

// subText converts a sub-segment value to its text form. Negative
// integers are rejected: normalization strips the sign, so "-3" and
// "3" would collide.
func subText(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return subInt(int64(s))
	case int8:
		return subInt(int64(s))
	case int16:
		return subInt(int64(s))
	case int32:
		return subInt(int64(s))
	case int64:
		return subInt(s)
	case uint:
		return strconv.FormatUint(uint64(s), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(s), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(s), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(s), 10), nil
	case uint64:
		return strconv.FormatUint(s, 10), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "sub segment must be text or an integer").
			WithContext("type", fmt.Sprintf("%T", v))
	}
}

func subInt(i int64) (string, error) {
	if i < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "sub segment integer must be non-negative").
			WithContext("sub", i)
	}
	return strconv.FormatInt(i, 10), nil
}
