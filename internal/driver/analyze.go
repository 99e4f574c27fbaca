package driver

import (
	"sdml/internal/ast"
	"sdml/internal/diag"
	"sdml/internal/lexer"
	"sdml/internal/parser"
	"sdml/internal/sema"
	"sdml/internal/source"
	"sdml/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, diag.BagReporter{Bag: bag})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Decls   []ast.Declaration
	Bag     *diag.Bag
}

func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	decls := parser.ParseFile(file, diag.BagReporter{Bag: bag})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Decls:   decls,
		Bag:     bag,
	}, nil
}

type AnalyzeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Decls   []ast.Declaration
	Model   *sema.DataModel // nil при любых ошибках
	Bag     *diag.Bag
}

// Analyze runs the whole single-file pipeline: load, tokenize+parse,
// semantic analysis. Semantic passes are skipped when the parser already
// reported errors; analyzing half-parsed declarations would only produce
// noise. Diagnostics come back sorted.
func Analyze(path string, maxDiagnostics int) (*AnalyzeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return analyzeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// AnalyzeBytes runs the same pipeline over in-memory content (stdin, tests).
func AnalyzeBytes(name string, content []byte, maxDiagnostics int) *AnalyzeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return analyzeFile(fs, fs.Get(fileID), maxDiagnostics)
}

func analyzeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *AnalyzeResult {
	bag := diag.NewBag(maxDiagnostics)
	decls := parser.ParseFile(file, diag.BagReporter{Bag: bag})

	var model *sema.DataModel
	if !bag.HasErrors() {
		model = sema.Analyze(decls, bag)
	}
	bag.Sort()

	return &AnalyzeResult{
		FileSet: fs,
		File:    file,
		Decls:   decls,
		Model:   model,
		Bag:     bag,
	}
}
