package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
	"github.com/bharatvision/labelcheck/internal/pipeline"
)

// Checker defines the interface for checking one label
type Checker interface {
	Check(ctx context.Context, in pipeline.Input) (*model.Result, error)
}

// Item is one named label in a batch
type Item struct {
	Name  string
	Input pipeline.Input
}

// CheckJob checks a single label
type CheckJob struct {
	Item    Item
	Checker Checker
}

// Execute executes the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	result, err := j.Checker.Check(ctx, j.Item.Input)
	return &CheckResult{
		Name:   j.Item.Name,
		Result: result,
		Error:  err,
	}
}

// CheckResult represents the result of a check job
type CheckResult struct {
	Name   string
	Result *model.Result
	Error  error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor checks many labels concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// Process checks all items concurrently and returns results in completion
// order. Label checks are independent; there are no ordering guarantees
// between them.
func (b *BatchProcessor) Process(ctx context.Context, items []Item) []*CheckResult {
	if len(items) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.Submit(&CheckJob{Item: item, Checker: b.checker})
		}
	}()

	raw := pool.Wait()
	results := make([]*CheckResult, 0, len(raw))
	for _, r := range raw {
		if cr, ok := r.(*CheckResult); ok {
			results = append(results, cr)
		}
	}
	return results
}

// LoadItems reads batch input from a path: a directory of .txt/.html label
// files, or a single file with labels separated by "---" lines.
func LoadItems(path string, category string) ([]Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		return loadDir(path, category)
	}
	return loadDelimitedFile(path, category)
}

// loadDir treats every .txt/.html file in the directory as one label
func loadDir(dir, category string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var items []Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".html", ".htm":
		default:
			continue
		}
		text, err := pipeline.LoadInputFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		items = append(items, Item{
			Name:  strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Input: pipeline.Input{Text: text, Category: category},
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// loadDelimitedFile splits one file into labels on "---" separator lines;
// "#" lines are comments
func loadDelimitedFile(path, category string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var items []Item
	var current strings.Builder
	flush := func() {
		text := strings.TrimSpace(current.String())
		current.Reset()
		if text == "" {
			return
		}
		items = append(items, Item{
			Name:  fmt.Sprintf("label-%03d", len(items)+1),
			Input: pipeline.Input{Text: text, Category: category},
		})
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "---" {
			flush()
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	flush()

	return items, nil
}
