package driver

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/quadra-mesh/quadra/internal/surfacesample"
	"github.com/quadra-mesh/quadra/meshgraph"
	"github.com/quadra-mesh/quadra/meshio"
)

// DefaultSampleCount is the number of surface samples Evaluate draws from
// each mesh, matching original_source/utils/eval.py's n_samples default.
const DefaultSampleCount = 10000

// EvaluateReport summarizes one Evaluate run.
type EvaluateReport struct {
	LogPath   string
	RowsTotal int
	RowsOK    int
	RowsSkipped int
}

// Evaluate reads outputDir/simplification_log.csv (as written by Batch),
// computes the symmetric surface error between each row's input mesh (in
// inputDir) and its simplified output (in outputDir), and rewrites the CSV
// with an "error" column appended (or overwritten, if already present).
// Rows whose input or output file is missing are left with a blank error
// value, mirroring original_source/batch_eval.py's np.nan fallback.
func Evaluate(inputDir, outputDir string, nSamples int) (EvaluateReport, error) {
	if nSamples <= 0 {
		nSamples = DefaultSampleCount
	}

	logPath := filepath.Join(outputDir, logFileName)
	records, err := readCSV(logPath)
	if err != nil {
		return EvaluateReport{}, err
	}
	if len(records) == 0 {
		return EvaluateReport{}, ErrBadLogRow
	}

	header := records[0]
	errCol := columnIndex(header, "error")
	if errCol < 0 {
		header = append(header, "error")
		errCol = len(header) - 1
	}

	report := EvaluateReport{LogPath: logPath}
	rng := rand.New(rand.NewSource(1))

	out := make([][]string, 0, len(records))
	out = append(out, header)
	for _, row := range records[1:] {
		row = padTo(row, len(header))
		report.RowsTotal++

		value, ok := evaluateRow(inputDir, outputDir, row, rng, nSamples)
		if ok {
			report.RowsOK++
			row[errCol] = strconv.FormatFloat(value, 'g', -1, 64)
		} else {
			report.RowsSkipped++
			row[errCol] = ""
		}
		out = append(out, row)
	}

	return report, writeCSV(logPath, out)
}

func evaluateRow(inputDir, outputDir string, row []string, rng *rand.Rand, nSamples int) (float64, bool) {
	if len(row) < 4 {
		return 0, false
	}
	name, ratioStr := row[0], row[1]
	ratio, err := strconv.ParseFloat(ratioStr, 64)
	if err != nil {
		return 0, false
	}

	inputPath := filepath.Join(inputDir, name)
	outputPath := filepath.Join(outputDir, batchOutputName(name, ratio))

	inputMesh, err := readMeshFile(inputPath)
	if err != nil {
		return 0, false
	}
	outputMesh, err := readMeshFile(outputPath)
	if err != nil {
		return 0, false
	}

	inputTris, err := surfacesample.Triangles(inputMesh)
	if err != nil {
		return 0, false
	}
	outputTris, err := surfacesample.Triangles(outputMesh)
	if err != nil {
		return 0, false
	}

	return surfacesample.SymmetricSurfaceError(inputTris, outputTris, nSamples, rng), true
}

func readMeshFile(path string) (*meshgraph.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := meshio.ReadMesh(f)
	if err != nil {
		return nil, err
	}

	return mesh, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrLogNotFound
		}

		return nil, fmt.Errorf("driver: reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	return r.ReadAll()
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("driver: writing %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}

	return w.Error()
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}

	return -1
}

func padTo(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}

	return row
}
