package bearing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError lists every rule a BearingNode breaks
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid bearing node: " + strings.Join(e.Fields, "; ")
}

type nodeValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *nodeValidator
)

func getValidator() *nodeValidator {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// report json field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &nodeValidator{validate: v, trans: trans}
	})
	return vSvc
}

// Validate checks that dimensions and stress are positive, loads and char
// depth are non-negative and both routing lengths fit within the column depth.
// Evaluate does not call Validate.
func (n BearingNode) Validate() error {
	v := getValidator()

	err := v.validate.Struct(n)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		msg := fe.Translate(v.trans)
		if fe.Tag() == "ltefield" {
			msg = fmt.Sprintf("%s must not exceed column_depth (%g)", fe.Field(), n.ColumnDepth)
		}
		out.Fields = append(out.Fields, msg)
	}
	return out
}

// Warnings returns non-fatal geometry issues worth flagging on a report
func (n BearingNode) Warnings() []string {
	var warnings []string

	if n.Beam1RoutingLength+n.Beam2RoutingLength > n.ColumnDepth {
		warnings = append(warnings, "Beam routing is overlapping. Please reduce one side.")
	}
	if n.CharDepth > 0 && n.ColumnWidth <= n.CharDepth*2 {
		warnings = append(warnings, fmt.Sprintf("Column is fully charred: width %g in <= 2 x char depth %g in.", n.ColumnWidth, n.CharDepth))
	}
	if n.CharDepth > 0 && n.Beam1RoutingLength <= n.CharDepth {
		warnings = append(warnings, "Beam 1 routing length is within the char depth. Increase bearing length.")
	}
	if n.CharDepth > 0 && n.Beam2RoutingLength <= n.CharDepth {
		warnings = append(warnings, "Beam 2 routing length is within the char depth. Increase bearing length.")
	}

	return warnings
}
