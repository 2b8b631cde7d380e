package coincidence

import "fmt"

// ReadSingles loads the five parallel columns of a singles table from an HDF5
// file. The table name comes from the upstream digitizer output (default
// "Singles5"); each column is a 1-D float64 dataset under that group.
func ReadSingles(filename string, table string) (SinglesColumns, error) {
	var cols SinglesColumns

	file, err := openInputFile(filename)
	if err != nil {
		return cols, err
	}
	defer file.Close()

	if cols.X, err = readFloatColumn(file, table+"/PostPosition_X"); err != nil {
		return cols, err
	}
	if cols.Y, err = readFloatColumn(file, table+"/PostPosition_Y"); err != nil {
		return cols, err
	}
	if cols.Z, err = readFloatColumn(file, table+"/PostPosition_Z"); err != nil {
		return cols, err
	}
	if cols.Energy, err = readFloatColumn(file, table+"/TotalEnergyDeposit"); err != nil {
		return cols, err
	}
	if cols.Time, err = readFloatColumn(file, table+"/GlobalTime"); err != nil {
		return cols, err
	}

	if logger != nil && configuration.Verbosity > 0 {
		message := fmt.Sprintf("Loaded %d singles from %s", len(cols.X), filename)
		logger.Info(message, "reader")
	}
	return cols, nil
}
