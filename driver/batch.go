package driver

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quadra-mesh/quadra/meshio"
	"github.com/quadra-mesh/quadra/simplify"
)

// BatchRatios is the fixed set of target ratios batch simplification runs
// at, taken verbatim from original_source/batch_simplify.py.
var BatchRatios = []float64{0.2, 0.5, 0.8}

const logFileName = "simplification_log.csv"

// logHeader is the column set of simplification_log.csv, same shape as
// original_source/batch_simplify.py's CSV log.
var logHeader = []string{"input", "ratio", "seconds", "original_vertices"}

// BatchReport summarizes one Batch run.
type BatchReport struct {
	LogPath    string
	FilesFound int
	Succeeded  int
	Failed     int
}

// Batch simplifies every ".obj" file in inputDir at each of BatchRatios,
// writing "<stem>_ratio_<ratio>.obj" into outputDir and appending one row
// per (file, ratio) pair to outputDir/simplification_log.csv. A per-file
// failure is logged with an "error" marker in place of elapsed seconds and
// the sweep continues (original_source/batch_simplify.py's try/except
// policy, spec §7's "fail one, continue the batch").
func Batch(inputDir, outputDir string) (BatchReport, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchReport{}, fmt.Errorf("driver: reading %s: %w", inputDir, err)
	}

	var inputFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".obj") {
			inputFiles = append(inputFiles, e.Name())
		}
	}
	sort.Strings(inputFiles)
	if len(inputFiles) == 0 {
		return BatchReport{}, ErrNoMeshFiles
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return BatchReport{}, fmt.Errorf("driver: creating %s: %w", outputDir, err)
	}
	logPath := filepath.Join(outputDir, logFileName)
	logFile, err := os.Create(logPath)
	if err != nil {
		return BatchReport{}, fmt.Errorf("driver: creating %s: %w", logPath, err)
	}
	defer logFile.Close()

	w := csv.NewWriter(logFile)
	if err := w.Write(logHeader); err != nil {
		return BatchReport{}, err
	}

	report := BatchReport{LogPath: logPath, FilesFound: len(inputFiles)}
	for _, name := range inputFiles {
		inputPath := filepath.Join(inputDir, name)
		for _, ratio := range BatchRatios {
			row, ok := batchOne(inputPath, outputDir, name, ratio)
			if ok {
				report.Succeeded++
			} else {
				report.Failed++
			}
			if err := w.Write(row); err != nil {
				return BatchReport{}, err
			}
			w.Flush()
		}
	}

	return report, w.Error()
}

func batchOne(inputPath, outputDir, name string, ratio float64) ([]string, bool) {
	ratioStr := strconv.FormatFloat(ratio, 'g', -1, 64)

	start := time.Now()
	f, err := os.Open(inputPath)
	if err != nil {
		return []string{name, ratioStr, "error", "0"}, false
	}
	defer f.Close()

	mesh, err := meshio.ReadMesh(f)
	if err != nil {
		return []string{name, ratioStr, "error", "0"}, false
	}
	original := mesh.AliveVertexCount()

	if _, err := simplify.Simplify(mesh, simplify.WithRatio(ratio)); err != nil {
		return []string{name, ratioStr, "error", "0"}, false
	}
	mesh.Compact()

	outputName := batchOutputName(name, ratio)
	out, err := os.Create(filepath.Join(outputDir, outputName))
	if err != nil {
		return []string{name, ratioStr, "error", strconv.Itoa(original)}, false
	}
	defer out.Close()

	if err := meshio.WriteMesh(out, mesh); err != nil {
		return []string{name, ratioStr, "error", strconv.Itoa(original)}, false
	}

	elapsed := time.Since(start).Seconds()

	return []string{name, ratioStr, strconv.FormatFloat(elapsed, 'f', 4, 64), strconv.Itoa(original)}, true
}

// batchOutputName turns ("bunny.obj", 0.5) into "bunny_ratio_0.5.obj",
// matching original_source/batch_simplify.py's naming.
func batchOutputName(name string, ratio float64) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	return fmt.Sprintf("%s_ratio_%s%s", stem, strconv.FormatFloat(ratio, 'g', -1, 64), ext)
}
