package filetype

import "github.com/bethropolis/tidal/internal/highlight"

// builtins returns the profiles compiled into the binary.
func builtins() []FileType {
	return []FileType{
		{
			Name:       "Rust",
			Extensions: []string{".rs"},
			Options: highlight.Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				PrimaryKeywords: []string{
					"as", "break", "const", "continue", "crate", "else", "enum",
					"extern", "false", "fn", "for", "if", "impl", "in", "let",
					"loop", "match", "mod", "move", "mut", "pub", "ref", "return",
					"self", "Self", "static", "struct", "super", "trait", "true",
					"type", "unsafe", "use", "where", "while", "dyn", "abstract",
					"become", "box", "do", "final", "macro", "override", "priv",
					"typeof", "unsized", "virtual", "yield", "async", "await", "try",
				},
				SecondaryKeywords: []string{
					"bool", "char", "i8", "i16", "i32", "i64", "isize", "u8",
					"u16", "u32", "u64", "usize", "f32", "f64",
				},
			},
		},
		{
			Name:       "Go",
			Extensions: []string{".go"},
			Options: highlight.Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				PrimaryKeywords: []string{
					"break", "case", "chan", "const", "continue", "default",
					"defer", "else", "fallthrough", "for", "func", "go", "goto",
					"if", "import", "interface", "map", "package", "range",
					"return", "select", "struct", "switch", "type", "var",
					"true", "false", "nil", "iota",
				},
				SecondaryKeywords: []string{
					"bool", "byte", "complex64", "complex128", "error",
					"float32", "float64", "int", "int8", "int16", "int32",
					"int64", "rune", "string", "uint", "uint8", "uint16",
					"uint32", "uint64", "uintptr", "any",
				},
			},
		},
		{
			Name:       "C",
			Extensions: []string{".c", ".h"},
			Options: highlight.Options{
				Numbers:    true,
				Strings:    true,
				Characters: true,
				Comments:   true,
				PrimaryKeywords: []string{
					"auto", "break", "case", "continue", "default", "do", "else",
					"enum", "extern", "for", "goto", "if", "register", "return",
					"sizeof", "static", "struct", "switch", "typedef", "union",
					"volatile", "while", "NULL",
				},
				SecondaryKeywords: []string{
					"int", "long", "double", "float", "char", "unsigned",
					"signed", "void", "short", "const", "bool",
				},
			},
		},
	}
}
