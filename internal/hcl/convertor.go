package hcl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var nullValue = cty.NullVal(cty.DynamicPseudoType)

// requisiteSeparator joins list-form requisites back into one text.
const requisiteSeparator = ", "

// decodeValue converts val to the cty type implied by the Go target and
// stores it there.
func decodeValue(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		return fmt.Errorf("unable to infer cty.Type for %T: %w", goVal, err)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}

// decodeRequisites accepts a string or a list of strings. List items are
// joined with requisiteSeparator.
func decodeRequisites(ctx context.Context, val cty.Value) (string, error) {
	ty := val.Type()
	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		var parts []string
		if err := decodeValue(ctx, val, &parts); err != nil {
			return "", err
		}
		return strings.Join(parts, requisiteSeparator), nil
	}

	var text string
	if err := decodeValue(ctx, val, &text); err != nil {
		return "", err
	}
	return text, nil
}
