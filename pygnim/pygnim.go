// Package pygnim exposes the Groebner-Nim engine to gpython scripts as the
// "_gnim" module.
package pygnim

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/go-python/gpython/py"

	"github.com/johnperry-math/Groebner-Nim/gnim"
	"github.com/johnperry-math/Groebner-Nim/libgnim"
	"github.com/johnperry-math/Groebner-Nim/libgnim/catalog"
)

var LIB_VERSION = "v1.2024.1"

var (
	PyGameType      = py.NewType("Game", "one interactive Groebner-Nim session")
	PyWorkspaceType = py.NewType("Workspace", "collects active session resources and catalogs")
	PyCatalogType   = py.NewType("Catalog", "gnim solution catalog")
)

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

func pyBool(b bool) py.Object {
	if b {
		return py.True
	}
	return py.False
}

/////////////////////////////////
// Game

type Game struct {
	session *libgnim.Session
}

func (g *Game) Type() *py.Type {
	return PyGameType
}

func (g *Game) M__str__() (py.Object, error) {
	b := strings.Builder{}
	b.Grow(192)
	writeGame(&b, g.session)
	return py.String(b.String()), nil
}

func (g *Game) M__repr__() (py.Object, error) {
	return g.M__str__()
}

func writeGame(b *strings.Builder, s *libgnim.Session) {
	fmt.Fprintf(b, "Groebner-Nim game (%s), %d moves played\n", s.Ordering(), s.MovesPlayed())
	for i, st := range s.Sticks() {
		mark := ""
		if i == s.Selected() {
			mark = "  <selected>"
		} else if s.IsCandidate(i) {
			mark = "  <candidate>"
		}
		fmt.Fprintf(b, "  [%d] %-18v %v%s\n", i, st, s.Color(i), mark)
	}
	if pending := s.Pending(); pending != nil {
		fmt.Fprintf(b, "  pending: %v\n", *pending)
	}
}

func getGameSession(obj py.Object) (*libgnim.Session, error) {
	g, isGame := obj.(*Game)
	if !isGame {
		return nil, py.ExceptionNewf(py.TypeError, "expected Game object (got %v)", obj.Type().Name)
	}
	return g.session, nil
}

// Arg 1 (str): configuration expression
// Arg 2 (str, optional): ordering name
func ph_NewGame(module py.Object, args py.Tuple) (py.Object, error) {
	var expr, ordName string
	switch len(args) {
	case 2:
		if err := py.LoadTuple(args, []interface{}{&expr, &ordName}); err != nil {
			return nil, err
		}
	case 1:
		if err := py.LoadTuple(args, []interface{}{&expr}); err != nil {
			return nil, err
		}
	default:
		return nil, py.ExceptionNewf(py.TypeError, "NewGame(configExpr, ordering=\"grevlex\")")
	}

	ord, err := gnim.OrderingByName(ordName)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	cfg, err := libgnim.ParseConfig(expr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	session, err := libgnim.NewSession(cfg, ord)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(&Game{session: session}), nil
}

// Arg 1 (int): difficulty (0=easy, 1=medium, 2=hard)
// Arg 2 (int): rng seed
// Arg 3 (str, optional): ordering name
func ph_RandomGame(module py.Object, args py.Tuple) (py.Object, error) {
	var difficulty, seed int32
	var ordName string
	switch len(args) {
	case 3:
		if err := py.LoadTuple(args, []interface{}{&difficulty, &seed, &ordName}); err != nil {
			return nil, err
		}
	case 2:
		if err := py.LoadTuple(args, []interface{}{&difficulty, &seed}); err != nil {
			return nil, err
		}
	default:
		return nil, py.ExceptionNewf(py.TypeError, "RandomGame(difficulty, seed, ordering=\"grevlex\")")
	}

	ord, err := gnim.OrderingByName(ordName)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	cfg := libgnim.RandomConfig(rng, libgnim.Difficulty(difficulty))
	session, err := libgnim.NewSession(cfg, ord)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(&Game{session: session}), nil
}

func ph_Game_Print(self py.Object, args py.Tuple) (py.Object, error) {
	g := self.(*Game)
	str, _ := g.M__str__()
	fmt.Println(string(str.(py.String)))
	return py.None, nil
}

func ph_Game_Select(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	i, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}
	s.Select(int(i))
	return py.None, nil
}

func ph_Game_Combine(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	var i, j int32
	if err := py.LoadTuple(args, []interface{}{&i, &j}); err != nil {
		return nil, err
	}
	_, queued, err := s.Combine(int(i), int(j))
	if err != nil {
		return nil, py.ExceptionNewf(py.IndexError, "%v", err)
	}
	return pyBool(queued), nil
}

func ph_Game_Commit(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return pyBool(s.CommitPending()), nil
}

func ph_Game_IsOver(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return pyBool(s.IsOver()), nil
}

func ph_Game_MoveCount(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return py.Int(s.MovesPlayed()), nil
}

func ph_Game_NumSticks(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return py.Int(s.NumSticks()), nil
}

func ph_Game_SolveCount(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return py.Int(s.Solution().MoveCount), nil
}

func ph_Game_Solution(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	return py.String(libgnim.FormatConfig(s.Solution().Basis)), nil
}

func ph_Game_Reset(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	var expr string
	if err := py.LoadTuple(args, []interface{}{&expr}); err != nil {
		return nil, err
	}
	cfg, err := libgnim.ParseConfig(expr)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	if err := s.Reset(cfg); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.None, nil
}

func ph_Game_UseCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	s, err := getGameSession(self)
	if err != nil {
		return nil, err
	}
	pycat, isCat := args[0].(*Catalog)
	if !isCat {
		return nil, py.ExceptionNewf(py.TypeError, "expected Catalog object (got %v)", args[0].Type().Name)
	}
	s.AttachCatalog(pycat.cat)
	return py.None, nil
}

/////////////////////////////////
// Workspace

type Workspace struct {
	Ctx gnim.WorkspaceContext
}

func (ws *Workspace) Type() *py.Type {
	return PyWorkspaceType
}

func (ws *Workspace) Close() {
	ws.Ctx.Close()
	<-ws.Ctx.Done()
}

func ph_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			Ctx: libgnim.NewWorkspace(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func ph_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	if err := py.LoadTuple(args, []interface{}{&pathname}); err != nil {
		return nil, err
	}
	_, err := os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func ph_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags int32
	if err := py.LoadTuple(args, []interface{}{&pathname, &flags}); err != nil {
		return nil, err
	}

	opts := gnim.CatalogOpts{
		DbPathName: pathname,
		ReadOnly:   (flags & READ_ONLY) != 0,
	}
	cat, err := catalog.OpenCatalog(ws.Ctx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.Object(&Catalog{cat: cat}), nil
}

/////////////////////////////////
// Catalog

type Catalog struct {
	cat gnim.Catalog
}

func (pycat *Catalog) Type() *py.Type {
	return PyCatalogType
}

func ph_Catalog_NumSolutions(self py.Object, args py.Tuple) (py.Object, error) {
	pycat := self.(*Catalog)
	return py.Int(pycat.cat.NumSolutions()), nil
}

func ph_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	pycat := self.(*Catalog)
	if pycat.cat != nil {
		pycat.cat.Close()
		pycat.cat = nil
	}
	return py.None, nil
}

func init() {

	/////////////////////////////////
	// Game
	{
		PyGameType.Dict["Print"] = py.MustNewMethod("Print", ph_Game_Print, 0, "prints the current configuration")
		PyGameType.Dict["Select"] = py.MustNewMethod("Select", ph_Game_Select, 0, "selects stick i, driving the move state machine")
		PyGameType.Dict["Combine"] = py.MustNewMethod("Combine", ph_Game_Combine, 0, "combines sticks i and j; returns True if a new stick was queued")
		PyGameType.Dict["Commit"] = py.MustNewMethod("Commit", ph_Game_Commit, 0, "commits the pending new stick")
		PyGameType.Dict["IsOver"] = py.MustNewMethod("IsOver", ph_Game_IsOver, 0, "")
		PyGameType.Dict["MoveCount"] = py.MustNewMethod("MoveCount", ph_Game_MoveCount, 0, "")
		PyGameType.Dict["NumSticks"] = py.MustNewMethod("NumSticks", ph_Game_NumSticks, 0, "")
		PyGameType.Dict["SolveCount"] = py.MustNewMethod("SolveCount", ph_Game_SolveCount, 0, "number of moves the computer needed")
		PyGameType.Dict["Solution"] = py.MustNewMethod("Solution", ph_Game_Solution, 0, "the minimal basis as a configuration expression")
		PyGameType.Dict["Reset"] = py.MustNewMethod("Reset", ph_Game_Reset, 0, "")
		PyGameType.Dict["UseCatalog"] = py.MustNewMethod("UseCatalog", ph_Game_UseCatalog, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		PyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", ph_Workspace_OpenCatalog, 0, "")
		PyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", ph_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		PyCatalogType.Dict["NumSolutions"] = py.MustNewMethod("NumSolutions", ph_Catalog_NumSolutions, 0, "")
		PyCatalogType.Dict["Close"] = py.MustNewMethod("Close", ph_Catalog_Close, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewGame", ph_NewGame, 0, ""),
			py.MustNewMethod("RandomGame", ph_RandomGame, 0, ""),
			py.MustNewMethod("GetWorkspace", ph_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"GREVLEX":     py.String("grevlex"),
			"LEX":         py.String("lex"),
			"EASY":        py.Int(libgnim.Easy),
			"MEDIUM":      py.Int(libgnim.Medium),
			"HARD":        py.Int(libgnim.Hard),
			"READ_ONLY":   py.Int(READ_ONLY),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_gnim",
				Doc:  "Groebner-Nim stick game gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})
	}
}
