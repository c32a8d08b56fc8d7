package script

import (
	"github.com/grafana/sobek"

	"github.com/bnema/themeroot/internal/logging"
)

// localStorage adapts port.PreferenceStore to the Web Storage shape:
// property access, the in operator, getItem, setItem and removeItem.
type localStorage struct {
	b *bindings
}

var _ sobek.DynamicObject = (*localStorage)(nil)

func (s *localStorage) lookup(key string) (string, bool) {
	if s.b.store == nil {
		return "", false
	}
	v, ok, err := s.b.store.Lookup(s.b.ctx, key)
	if err != nil {
		logging.FromContext(s.b.ctx).Warn().Err(err).Str("key", key).Msg("localStorage read failed, treating as absent")
		return "", false
	}
	return v, ok
}

func (s *localStorage) method(name string) sobek.Value {
	vm := s.b.vm
	switch name {
	case "getItem":
		return vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			if v, ok := s.lookup(call.Argument(0).String()); ok {
				return vm.ToValue(v)
			}
			return sobek.Null()
		})
	case "setItem":
		return vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			s.Set(call.Argument(0).String(), call.Argument(1))
			return sobek.Undefined()
		})
	case "removeItem":
		return vm.ToValue(func(call sobek.FunctionCall) sobek.Value {
			s.Delete(call.Argument(0).String())
			return sobek.Undefined()
		})
	}
	return nil
}

func (s *localStorage) Get(key string) sobek.Value {
	if m := s.method(key); m != nil {
		return m
	}
	if v, ok := s.lookup(key); ok {
		return s.b.vm.ToValue(v)
	}
	return sobek.Undefined()
}

func (s *localStorage) Set(key string, val sobek.Value) bool {
	if s.b.store == nil {
		return false
	}
	if err := s.b.store.Store(s.b.ctx, key, val.String()); err != nil {
		panic(s.b.vm.NewGoError(err))
	}
	return true
}

func (s *localStorage) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *localStorage) Delete(key string) bool {
	if s.b.store == nil {
		return true
	}
	if err := s.b.store.Remove(s.b.ctx, key); err != nil {
		panic(s.b.vm.NewGoError(err))
	}
	return true
}

func (s *localStorage) Keys() []string {
	return nil
}
