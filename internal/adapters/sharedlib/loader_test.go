package sharedlib_test

import (
	"context"
	"errors"
	"plugin"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/addon/internal/adapters/sharedlib"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type library map[string]plugin.Symbol

func (l library) Lookup(symbol string) (plugin.Symbol, error) {
	sym, ok := l[symbol]
	if !ok {
		return nil, errors.New("symbol not found")
	}
	return sym, nil
}

func opener(libs map[string]library) sharedlib.Opener {
	return func(path string) (sharedlib.Library, error) {
		lib, ok := libs[path]
		if !ok {
			return nil, errors.New("cannot open shared object")
		}
		return lib, nil
	}
}

func TestLoader_Supports(t *testing.T) {
	l := sharedlib.NewLoader()
	assert.True(t, l.Supports("/addons/Foo/managed/Foo.so"))
	assert.False(t, l.Supports("/addons/Foo/managed/Foo.js"))
}

func TestLoader_LoadModule(t *testing.T) {
	factory := func(host ports.AddonHost) ports.EntryPoint { return host.Default() }
	register := func(reg ports.EntryPointRegistrar) { reg.RegisterEntryPoint("Foo", factory) }
	registerVar := register

	l := sharedlib.NewLoaderWithOpener(opener(map[string]library{
		"/addons/Foo/managed/Foo.so": {sharedlib.RegisterSymbol: register},
		"/addons/Foo/managed/Var.so": {sharedlib.RegisterSymbol: &registerVar},
	}))

	for _, path := range []string{"/addons/Foo/managed/Foo.so", "/addons/Foo/managed/Var.so"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reg := mocks.NewMockEntryPointRegistrar(ctrl)
			reg.EXPECT().RegisterEntryPoint("Foo", gomock.Any())

			m, err := l.LoadModule(context.Background(), path, reg)
			require.NoError(t, err)
			assert.Equal(t, domain.ModuleKindShared, m.Kind)
			assert.Equal(t, path, m.Path)
			assert.Equal(t, domain.Stem(path), m.Name)
		})
	}
}

func TestLoader_LoadModule_Failures(t *testing.T) {
	l := sharedlib.NewLoaderWithOpener(opener(map[string]library{
		"/m/nosym.so":   {},
		"/m/badtype.so": {sharedlib.RegisterSymbol: func() {}},
	}))

	for _, path := range []string{"/m/missing.so", "/m/nosym.so", "/m/badtype.so"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reg := mocks.NewMockEntryPointRegistrar(ctrl)

			m, err := l.LoadModule(context.Background(), path, reg)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Equal(t, "ModuleLoadFailure", domain.KindOf(err))
		})
	}
}
