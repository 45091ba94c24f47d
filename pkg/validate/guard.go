package validate

import (
	"fmt"
	"maps"
	"slices"
)

// ParamTypes maps parameter names to expected-type arguments (the same
// forms AssertType accepts).
type ParamTypes map[string]any

// Guard checks function arguments against declared parameter types at call
// time. Failures name the declared parameter rather than an inferred
// subject, so wrapped call sites read naturally.
type Guard struct {
	engine *Engine
}

// NewGuard binds a guard to an engine. A nil engine uses the package
// default.
func NewGuard(engine *Engine) *Guard {
	if engine == nil {
		engine = defaultEngine
	}
	return &Guard{engine: engine}
}

// Check validates each named argument against its declared type and returns
// the first mismatch, prefixed with the function name:
//
//	func Resize(width, height any) error {
//	    if err := guard.Check("Resize", validate.ParamTypes{"width": 0, "height": 0},
//	        map[string]any{"width": width, "height": height}); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Declared parameters absent from args are skipped. Parameters are checked
// in name order so the first reported failure is deterministic.
func (g *Guard) Check(funcName string, types ParamTypes, args map[string]any) error {
	tv := g.engine.validators[KindType]
	for _, name := range slices.Sorted(maps.Keys(types)) {
		value, present := args[name]
		if !present {
			continue
		}
		c := constraints{types: typeSet(types[name])}
		if !tv.validate(value, c) {
			msg := tv.describeFailure(value, name, c)
			return g.engine.config.NewError(KindTypeMismatch, fmt.Sprintf("in call to %s: %s", funcName, msg))
		}
	}
	return nil
}
