package coincidence

import (
	"errors"
	"fmt"

	"github.com/jmbenlloch/go-hdf5"
)

// Column layout of the output Coincidences table. Field names become the HDF5
// column names, so they follow the downstream tooling's convention rather
// than Go's. The phantom/source/run columns are required by that tooling and
// always written as zero.
type CoincidenceHDF5 struct {
	globalPosX1      float64
	globalPosY1      float64
	globalPosZ1      float64
	globalPosX2      float64
	globalPosY2      float64
	globalPosZ2      float64
	time1            float64
	time2            float64
	energy1          float64
	energy2          float64
	eventID1         int64
	eventID2         int64
	comptonPhantom1  int32
	comptonPhantom2  int32
	RayleighPhantom1 int32
	RayleighPhantom2 int32
	sourceID1        int32
	sourceID2        int32
	runID            int32
}

type RunInfoHDF5 struct {
	run_number int32
}

type ParamHDF5 struct {
	// The Str suffix makes go-hdf5 emit a fixed-length string column
	// named "param" instead of a uint8 array.
	paramStr [STRLEN]byte
	value    float64
}

type Writer struct {
	File         *hdf5.File
	Filename     string
	RunGroup     *hdf5.Group
	CoincTable   *hdf5.Dataset
	RunInfoTable *hdf5.Dataset
	ParamsTable  *hdf5.Dataset
	PairCounter  int
	ParamCounter int
}

// NewWriter creates the output file with an empty Coincidences table at the
// root and a Run group for run metadata. The empty table makes a run with
// zero coincidences still produce a well-formed file.
func NewWriter(filename string) (*Writer, error) {
	// Set string size for HDF5
	hdf5.SetStringLength(STRLEN)

	writer := &Writer{Filename: filename}

	var err error
	writer.File, err = createOutputFile(filename)
	if err != nil {
		return nil, err
	}
	writer.RunGroup, err = createGroup(writer.File, "Run")
	if err != nil {
		writer.abort()
		return nil, err
	}
	writer.CoincTable, err = createTable(writer.File, "Coincidences", CoincidenceHDF5{})
	if err != nil {
		writer.abort()
		return nil, err
	}
	writer.RunInfoTable, err = createTable(writer.RunGroup, "runInfo", RunInfoHDF5{})
	if err != nil {
		writer.abort()
		return nil, err
	}
	writer.ParamsTable, err = createTable(writer.RunGroup, "configuration", ParamHDF5{})
	if err != nil {
		writer.abort()
		return nil, err
	}
	return writer, nil
}

// abort releases whatever handles a failed NewWriter managed to open, so a
// half-built writer does not keep the file locked.
func (w *Writer) abort() {
	if w.ParamsTable != nil {
		w.ParamsTable.Close()
	}
	if w.RunInfoTable != nil {
		w.RunInfoTable.Close()
	}
	if w.CoincTable != nil {
		w.CoincTable.Close()
	}
	if w.RunGroup != nil {
		w.RunGroup.Close()
	}
	if w.File != nil {
		w.File.Close()
	}
}

// WriteRunInfo stores the run number in the Run/runInfo table.
func (w *Writer) WriteRunInfo(runNumber int32) {
	writeEntryToTable(w.RunInfoTable, RunInfoHDF5{run_number: runNumber}, 0)
}

// WriteParameters records the matching parameters used for this pass in the
// Run/configuration table.
func (w *Writer) WriteParameters(config Configuration) {
	params := []ParamHDF5{
		{paramStr: convertToHdf5String("time_window_ns"), value: config.TimeWindowNs},
		{paramStr: convertToHdf5String("min_angle_deg"), value: config.MinAngleDeg},
		{paramStr: convertToHdf5String("n_modules"), value: float64(config.NModules)},
		{paramStr: convertToHdf5String("rotation_speed"), value: config.RotationSpeed},
		{paramStr: convertToHdf5String("rotating"), value: boolToFloat(config.Rotating)},
		{paramStr: convertToHdf5String("partial_ring"), value: boolToFloat(config.Mode == ModePartialRing)},
	}
	writeArrayToTable(w.ParamsTable, &params, w.ParamCounter)
	w.ParamCounter += len(params)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// WritePairs appends coincidence pairs to the Coincidences table. The event
// ids are per-run pair sequence numbers on both sides; the phantom, source
// and run columns stay zero.
func (w *Writer) WritePairs(pairs []CoincidencePair) {
	if len(pairs) == 0 {
		return
	}
	rows := make([]CoincidenceHDF5, len(pairs))
	for i, pair := range pairs {
		rows[i] = CoincidenceHDF5{
			globalPosX1: pair.X1,
			globalPosY1: pair.Y1,
			globalPosZ1: pair.Z1,
			globalPosX2: pair.X2,
			globalPosY2: pair.Y2,
			globalPosZ2: pair.Z2,
			time1:       pair.Time1,
			time2:       pair.Time2,
			energy1:     pair.Energy1,
			energy2:     pair.Energy2,
			eventID1:    int64(w.PairCounter + i),
			eventID2:    int64(w.PairCounter + i),
		}
	}
	writeArrayToTable(w.CoincTable, &rows, w.PairCounter)
	w.PairCounter += len(pairs)
}

func (w *Writer) Close() error {
	var errs []error

	if err := w.CoincTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing coincidences table: %w", err))
	}
	if err := w.RunInfoTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing run info table: %w", err))
	}
	if err := w.ParamsTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing params table: %w", err))
	}
	if err := w.RunGroup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing run group: %w", err))
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
