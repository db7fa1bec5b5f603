package report

import (
	"encoding/json"
	"io"
	"sort"
	"sync"
)

// Data represents the structure of the JSON report output.
// It maps directly to the JSON schema consumed by CI integration.
type Data struct {
	// FilesChanged lists the unique paths of files rewritten during the run.
	FilesChanged []string `json:"files_changed"`
	// FilesScanned is the number of files the batch examined.
	FilesScanned int `json:"files_scanned"`
	// IdentifiersRebound is the number of (file, identifier) pairs rewritten.
	IdentifiersRebound int `json:"identifiers_rebound"`
	// RegionsRewritten is the number of function bodies that changed.
	RegionsRewritten int `json:"regions_rewritten"`
	// PipelinesSimplified is the number of single-stage pipelines collapsed.
	PipelinesSimplified int `json:"pipelines_simplified"`
	// Skipped is the number of files passed over because of read or write
	// failures.
	Skipped int `json:"skipped"`
	// Verified records whether the lint tool was re-run after rewriting.
	Verified bool `json:"verified"`
	// RemainingViolations is the post-run finding count when Verified.
	RemainingViolations int `json:"remaining_violations"`
}

// Reporter collects statistics during the batch and generates structured
// output. It is safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	data    Data
	fileSet map[string]struct{}
}

// New creates a new instance of Reporter with initialized maps.
func New() *Reporter {
	return &Reporter{
		fileSet: make(map[string]struct{}),
		data: Data{
			FilesChanged: []string{},
		},
	}
}

// AddFile records a file path as changed.
// It keeps a unique set of files, ignoring duplicates.
//
// path: The file path to record.
func (r *Reporter) AddFile(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fileSet[path]; !exists {
		r.fileSet[path] = struct{}{}
		r.data.FilesChanged = append(r.data.FilesChanged, path)
	}
}

// IncScanned increments the counter of examined files.
func (r *Reporter) IncScanned() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.FilesScanned++
}

// IncRebound increments the counter of rewritten (file, identifier) pairs.
func (r *Reporter) IncRebound() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.IdentifiersRebound++
}

// AddRegions adds n to the counter of rewritten function bodies.
func (r *Reporter) AddRegions(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.RegionsRewritten += n
}

// AddPipelines adds n to the counter of simplified single-stage pipelines.
func (r *Reporter) AddPipelines(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.PipelinesSimplified += n
}

// IncSkipped increments the counter of files passed over after an I/O
// failure.
func (r *Reporter) IncSkipped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.Skipped++
}

// SetRemainingViolations records the lint finding count observed after the
// rewrite pass.
func (r *Reporter) SetRemainingViolations(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.Verified = true
	r.data.RemainingViolations = count
}

// WriteJSON serializes the collected statistics to the provided writer in
// indented JSON format. The file list is sorted before writing to keep the
// output deterministic.
//
// w: The writer to output the JSON to.
func (r *Reporter) WriteJSON(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Ensure deterministic output
	sort.Strings(r.data.FilesChanged)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.data)
}

// GetData returns a copy of the internal data structure.
// This is primarily useful for testing or programmatic access aside from
// writing JSON.
func (r *Reporter) GetData() Data {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Return copy to prevent external mutation race conditions
	files := make([]string, len(r.data.FilesChanged))
	copy(files, r.data.FilesChanged)
	sort.Strings(files)

	copied := r.data
	copied.FilesChanged = files
	return copied
}
