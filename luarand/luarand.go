// Package luarand exposes generators to gopher-lua scripts as the
// "microrand" module.
//
//	local microrand = require("microrand")
//	local g = microrand.new(1234)
//	print(g:float(), g:int(1, 6), g:draws())
package luarand

import (
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
	luar "layeh.com/gopher-luar"

	"github.com/zxfonline/microrand/config"
	"github.com/zxfonline/microrand/log"
	"github.com/zxfonline/microrand/random"
)

const (
	ModuleName        = "microrand"
	generatorTypeName = "microrand.generator"
)

var exports = map[string]lua.LGFunction{
	"new":    newGenerator,
	"minstd": newMinStd,
	"custom": newCustom,
	"stream": newStream,
}

var methods = map[string]lua.LGFunction{
	"float":   nextFloat,
	"float32": nextFloat32,
	"int":     nextInt,
	"draws":   draws,
	"seed":    seed,
}

// LuaLogf is exposed to scripts as the Logf global.
func LuaLogf(format string, v ...interface{}) {
	log.WithField("module", ModuleName).Infof(format, v...)
}

// Preload registers the module with L so scripts can require it. Lua numbers
// are float64: seeds, bounds and results beyond 2^53 lose precision crossing
// the boundary.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, loader)
}

func loader(L *lua.LState) int {
	metatable(L)
	L.Push(L.SetFuncs(L.NewTable(), exports))
	return 1
}

func metatable(L *lua.LState) *lua.LTable {
	mt := L.NewTypeMetatable(generatorTypeName)
	if mt.RawGetString("__index") == lua.LNil {
		L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	}
	return mt
}

// NewState returns a restricted state with the base, package, table, string
// and math libraries, the json and microrand modules, and the Logf global.
// dofile and loadfile are removed; require still searches package.path.
func NewState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true, IncludeGoStackTrace: true})
	for _, pair := range []struct {
		n string
		f lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage}, // Must be first
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(pair.f),
			NRet:    0,
			Protect: true,
		}, lua.LString(pair.n)); err != nil {
			panic(err)
		}
	}
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
	luajson.Preload(L)
	Preload(L)
	L.SetGlobal("Logf", luar.New(L, LuaLogf))
	return L
}

// Push places g on the stack as a generator userdata. The module does not
// have to be required first.
func Push(L *lua.LState, g *random.Generator) {
	ud := L.NewUserData()
	ud.Value = g
	L.SetMetatable(ud, metatable(L))
	L.Push(ud)
}

func check(L *lua.LState) *random.Generator {
	ud := L.CheckUserData(1)
	if g, ok := ud.Value.(*random.Generator); ok {
		return g
	}
	L.ArgError(1, "generator expected")
	return nil
}

func newGenerator(L *lua.LState) int {
	Push(L, random.New(L.CheckInt64(1)))
	return 1
}

func newMinStd(L *lua.LState) int {
	Push(L, random.NewMinStd(L.CheckInt64(1)))
	return 1
}

func newCustom(L *lua.LState) int {
	g, err := random.NewCustom(L.CheckInt64(1), L.CheckInt64(2), L.CheckInt64(3), L.CheckInt64(4))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	Push(L, g)
	return 1
}

// stream builds a generator from the table loaded by config.InitConfig.
func newStream(L *lua.LState) int {
	g, err := config.Generator(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	Push(L, g)
	return 1
}

func nextFloat(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).NextFloat64()))
	return 1
}

func nextFloat32(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).NextFloat32()))
	return 1
}

func nextInt(L *lua.LState) int {
	g := check(L)
	v, err := g.NextInt64(L.CheckInt64(2), L.CheckInt64(3))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func draws(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).Draws()))
	return 1
}

func seed(L *lua.LState) int {
	check(L).Seed(L.CheckInt64(2))
	return 0
}
