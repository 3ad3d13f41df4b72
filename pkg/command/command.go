// Package command builds zero-argument actions bound to cells, used as
// event handler bodies.
//
// Commands hold no state of their own: every call re-reads its inputs.
//
//	count := model.NewState(0)
//	button.OnClick(command.Increment(count, 1))
package command

import (
	"reflect"

	"github.com/QAddict/ruix/pkg/model"
)

// Command is a zero-argument action.
type Command func()

// Run calls c if it is not nil.
func (c Command) Run() {
	if c != nil {
		c()
	}
}

// Set returns a command that sets target to value. When value is an
// observable its current value is read at call time; the command does not
// follow later changes reactively.
func Set(target model.Settable, value any) Command {
	if source, ok := value.(model.Observable); ok {
		return func() { target.Set(source.Get()) }
	}
	return func() { target.Set(value) }
}

// Update returns a command that applies fn to target.
func Update(target model.Settable, fn func(any) any) Command {
	return func() { target.Update(fn) }
}

// AddTo returns a command that appends item to the []any held by target.
// A nil value is treated as an empty slice.
func AddTo(target model.Settable, item any) Command {
	return Update(target, func(v any) any {
		items, _ := v.([]any)
		return append(items, item)
	})
}

// Toggle returns a command that sets target to the negation of its current
// truthiness.
func Toggle(target model.Settable) Command {
	return func() { target.Set(!model.Truthy(target.Get())) }
}

// When returns a command that runs cmd only if condition is truthy at call
// time.
func When(condition model.Observable, cmd Command) Command {
	return func() {
		if model.Truthy(condition.Get()) {
			cmd.Run()
		}
	}
}

// Trigger returns a command that re-notifies target's listeners.
func Trigger(target model.Observable) Command {
	return func() { target.Trigger() }
}

// Increment returns a command that adds by to a numeric target, keeping the
// target's numeric type. A nil value counts as zero of by's type.
func Increment(target model.Settable, by any) Command {
	return func() { target.Set(add(target.Get(), by)) }
}

// Decrement returns a command that subtracts by from a numeric target.
func Decrement(target model.Settable, by any) Command {
	return Increment(target, model.Invert(by))
}

// EitherOr returns a listener running trueCmd for truthy values and
// falseCmd otherwise.
func EitherOr(trueCmd, falseCmd Command) model.Listener {
	return func(v any) {
		if model.Truthy(v) {
			trueCmd.Run()
		} else {
			falseCmd.Run()
		}
	}
}

// Sequence returns a command running cmds in order.
func Sequence(cmds ...Command) Command {
	return func() {
		for _, c := range cmds {
			c.Run()
		}
	}
}

// add sums two numbers in the type of a (or b when a is nil). Unsupported
// operands leave a unchanged.
func add(a, b any) any {
	if a == nil {
		return b
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !bv.IsValid() {
		return a
	}
	switch {
	case av.CanInt() && (bv.CanInt() || bv.CanUint()):
		return reflect.ValueOf(av.Int() + toInt(bv)).Convert(av.Type()).Interface()
	case av.CanUint() && (bv.CanInt() || bv.CanUint()):
		return reflect.ValueOf(uint64(int64(av.Uint()) + toInt(bv))).Convert(av.Type()).Interface()
	case av.CanFloat() && (bv.CanInt() || bv.CanUint() || bv.CanFloat()):
		return reflect.ValueOf(av.Float() + toFloat(bv)).Convert(av.Type()).Interface()
	case (av.CanInt() || av.CanUint()) && bv.CanFloat():
		return av.Interface()
	}
	return a
}

func toInt(v reflect.Value) int64 {
	if v.CanUint() {
		return int64(v.Uint())
	}
	return v.Int()
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanUint():
		return float64(v.Uint())
	}
	return float64(v.Int())
}
