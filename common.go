package atomset

// Common atoms, in the order they are reserved by New.
// The order is shared with downstream consumers of exported atom tables.
const (
	AtomArguments Index = iota
	AtomAsync
	AtomAwait
	AtomBreak
	AtomCase
	AtomCatch
	AtomClass
	AtomConst
	AtomContinue
	AtomDebugger
	AtomDefault
	AtomDelete
	AtomDo
	AtomElse
	AtomEnum
	AtomEval
	AtomExport
	AtomExtends
	AtomFalse
	AtomFinally
	AtomFor
	AtomFunction
	AtomIf
	AtomImplements
	AtomImport
	AtomIn
	AtomInstanceof
	AtomInterface
	AtomLet
	AtomNew
	AtomNull
	AtomPackage
	AtomPrivate
	AtomProtected
	AtomPublic
	AtomReturn
	AtomStatic
	AtomSuper
	AtomSwitch
	AtomThis
	AtomThrow
	AtomTrue
	AtomTry
	AtomTypeof
	AtomVar
	AtomVoid
	AtomWhile
	AtomWith
	AtomYield
	AtomUseStrict
	AtomProto

	// NumCommon is the number of indices reserved by New.
	NumCommon int = iota
)

type commonAtom struct {
	text string
	name string
}

var commonAtoms = [NumCommon]commonAtom{
	AtomArguments:  {"arguments", "arguments"},
	AtomAsync:      {"async", "async"},
	AtomAwait:      {"await", "await"},
	AtomBreak:      {"break", "break"},
	AtomCase:       {"case", "case"},
	AtomCatch:      {"catch", "catch"},
	AtomClass:      {"class", "class"},
	AtomConst:      {"const", "const"},
	AtomContinue:   {"continue", "continue"},
	AtomDebugger:   {"debugger", "debugger"},
	AtomDefault:    {"default", "default"},
	AtomDelete:     {"delete", "delete"},
	AtomDo:         {"do", "do"},
	AtomElse:       {"else", "else"},
	AtomEnum:       {"enum", "enum"},
	AtomEval:       {"eval", "eval"},
	AtomExport:     {"export", "export"},
	AtomExtends:    {"extends", "extends"},
	AtomFalse:      {"false", "false"},
	AtomFinally:    {"finally", "finally"},
	AtomFor:        {"for", "for"},
	AtomFunction:   {"function", "function"},
	AtomIf:         {"if", "if"},
	AtomImplements: {"implements", "implements"},
	AtomImport:     {"import", "import"},
	AtomIn:         {"in", "in"},
	AtomInstanceof: {"instanceof", "instanceof"},
	AtomInterface:  {"interface", "interface"},
	AtomLet:        {"let", "let"},
	AtomNew:        {"new", "new"},
	AtomNull:       {"null", "null"},
	AtomPackage:    {"package", "package"},
	AtomPrivate:    {"private", "private"},
	AtomProtected:  {"protected", "protected"},
	AtomPublic:     {"public", "public"},
	AtomReturn:     {"return", "return"},
	AtomStatic:     {"static", "static"},
	AtomSuper:      {"super", "super"},
	AtomSwitch:     {"switch", "switch"},
	AtomThis:       {"this", "this"},
	AtomThrow:      {"throw", "throw"},
	AtomTrue:       {"true", "true"},
	AtomTry:        {"try", "try"},
	AtomTypeof:     {"typeof", "typeof"},
	AtomVar:        {"var", "var"},
	AtomVoid:       {"void", "void"},
	AtomWhile:      {"while", "while"},
	AtomWith:       {"with", "with"},
	AtomYield:      {"yield", "yield"},
	AtomUseStrict:  {"use strict", "use_strict"},
	AtomProto:      {"__proto__", "proto"},
}

var commonNames = func() map[string]Index {
	names := make(map[string]Index, NumCommon)
	for i, atom := range commonAtoms {
		names[atom.name] = Index(i)
	}
	return names
}()

// CommonAtoms returns the text of every common atom, in reserved order.
func CommonAtoms() []string {
	texts := make([]string, NumCommon)
	for i, atom := range commonAtoms {
		texts[i] = atom.text
	}
	return texts
}

// CommonByName returns the reserved index of the common atom with the given
// symbolic name, e.g. "return" or "use_strict".
func CommonByName(name string) (Index, bool) {
	i, ok := commonNames[name]
	return i, ok
}

// IsCommon reports whether i is one of the reserved common indices.
func (i Index) IsCommon() bool { return int(i) < NumCommon }

// CommonName returns the symbolic name of a common atom, or "" for any other
// index.
func (i Index) CommonName() string {
	if i.IsCommon() {
		return commonAtoms[i].name
	}
	return ""
}
