package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sdml/internal/diag"
	"sdml/internal/parser"
	"sdml/internal/project"
	"sdml/internal/sema"
	"sdml/internal/source"
)

// AnalyzeDirResult содержит результат анализа одного файла
type AnalyzeDirResult struct {
	Path      string          // Относительный путь к файлу
	FileID    source.FileID   // ID файла в FileSet
	Model     *sema.DataModel // nil при любых ошибках и для кешированных файлов
	Bag       *diag.Bag       // Диагностики
	FromCache bool            // Диагностики восстановлены из кеша
}

// listSchemaFiles возвращает отсортированный список всех *.sdml файлов в директории
func listSchemaFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sdml") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// AnalyzeDir анализирует все *.sdml файлы в директории параллельно.
// cache может быть nil: тогда каждый файл анализируется заново.
func AnalyzeDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) (*source.FileSet, []AnalyzeDirResult, error) {
	// Собираем список файлов
	files, err := listSchemaFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]AnalyzeDirResult, len(files))

	// Параллельный анализ
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				// Проверяем ошибку загрузки
				if loadErr, hadError := loadErrors[path]; hadError {
					bag := diag.NewBag(maxDiagnostics)
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
						Primary:  source.Span{}, // Empty span for I/O errors
					})
					results[i] = AnalyzeDirResult{
						Path: path,
						Bag:  bag,
					}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)
				key := project.Digest(file.Hash)

				// Неизменившийся файл: воспроизводим диагностики из кеша
				if cache != nil {
					var payload DiskPayload
					if hit, err := cache.Get(key, &payload); err == nil && hit {
						if bag := diskPayloadToBag(&payload, fileID, maxDiagnostics); bag != nil {
							results[i] = AnalyzeDirResult{
								Path:      path,
								FileID:    fileID,
								Bag:       bag,
								FromCache: true,
							}
							return nil
						}
					}
				}

				bag := diag.NewBag(maxDiagnostics)
				decls := parser.ParseFile(file, diag.BagReporter{Bag: bag})

				var model *sema.DataModel
				if !bag.HasErrors() {
					model = sema.Analyze(decls, bag)
				}
				bag.Sort()

				if cache != nil {
					// кеш — ускорение, а не корректность: ошибку записи глотаем
					_ = cache.Put(key, bagToDiskPayload(path, bag))
				}

				// Сохраняем результат (мьютекс не нужен — индекс i уникален)
				results[i] = AnalyzeDirResult{
					Path:   path,
					FileID: fileID,
					Model:  model,
					Bag:    bag,
				}

				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
