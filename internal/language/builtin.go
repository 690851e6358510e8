package language

import "github.com/dshills/textcore/internal/engine/cell"

// Plain returns a profile with no highlighting and no comment marker.
func Plain() *Profile {
	return NewProfile("plain", ".txt")
}

// Go returns a profile for Go.
func Go() *Profile {
	p := NewProfile("go", ".go")
	p.SetLineComment("//")

	p.AddRule(`//.*$`, cell.ColorComment)
	p.AddRule(`"(?:[^"\\]|\\.)*"`, cell.ColorString)
	p.AddRule("`[^`]*`", cell.ColorString)
	p.AddRule(`'(?:[^'\\]|\\.)*'`, cell.ColorString)

	p.AddKeywords(cell.ColorKeyword,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select",
		"func", "var", "const", "type", "struct", "interface", "map",
		"chan", "package", "import", "defer", "go")
	p.AddKeywords(cell.ColorConstant, "true", "false", "nil", "iota")
	p.AddKeywords(cell.ColorType,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	p.AddKeywords(cell.ColorFunction,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println",
		"min", "max", "clear")
	return p
}

// Python returns a profile for Python.
func Python() *Profile {
	p := NewProfile("python", ".py", ".pyw")
	p.SetLineComment("#")

	p.AddRule(`#.*$`, cell.ColorComment)
	p.AddRule(`"(?:[^"\\]|\\.)*"`, cell.ColorString)
	p.AddRule(`'(?:[^'\\]|\\.)*'`, cell.ColorString)

	p.AddKeywords(cell.ColorKeyword,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"def", "class", "lambda", "async", "await", "import", "from",
		"global", "nonlocal", "pass", "yield", "assert", "del",
		"in", "is", "not", "and", "or", "match", "case")
	p.AddKeywords(cell.ColorConstant, "True", "False", "None")
	p.AddKeywords(cell.ColorFunction,
		"print", "len", "range", "enumerate", "zip", "map", "filter",
		"open", "input", "isinstance", "sorted", "reversed",
		"sum", "min", "max", "abs", "round", "all", "any")
	return p
}

// JavaScript returns a profile for JavaScript and TypeScript.
func JavaScript() *Profile {
	p := NewProfile("javascript", ".js", ".jsx", ".ts", ".tsx", ".mjs")
	p.SetLineComment("//")

	p.AddRule(`//.*$`, cell.ColorComment)
	p.AddRule(`"(?:[^"\\]|\\.)*"`, cell.ColorString)
	p.AddRule(`'(?:[^'\\]|\\.)*'`, cell.ColorString)
	p.AddRule("`[^`]*`", cell.ColorString)

	p.AddKeywords(cell.ColorKeyword,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "throw", "try", "catch",
		"finally", "function", "var", "let", "const", "class",
		"extends", "async", "await", "import", "export", "from",
		"new", "delete", "typeof", "instanceof", "in", "of",
		"this", "super", "static", "yield")
	p.AddKeywords(cell.ColorConstant,
		"true", "false", "null", "undefined", "NaN", "Infinity")
	return p
}

// Builtin returns all built-in profiles.
func Builtin() []*Profile {
	return []*Profile{Go(), Python(), JavaScript(), Plain()}
}

// ForExtension returns the first profile claiming the extension, or
// Plain when none matches.
func ForExtension(profiles []*Profile, ext string) *Profile {
	for _, p := range profiles {
		for _, e := range p.Extensions() {
			if e == ext {
				return p
			}
		}
	}
	return Plain()
}
