package coincidence

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user string, passwd string, host string, dbname string) (*sqlx.DB, error) {
	dbURI := fmt.Sprintf("%s:%s@(%s:3306)/%s?parseTime=true", user, passwd, host, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// ScannerGeometry is the per-run detector layout stored in the database.
// Runs are selected by the [MinRun, MaxRun] validity interval of each row.
type ScannerGeometry struct {
	NModules      int     `db:"n_modules"`
	RotationSpeed float64 `db:"rotation_speed_deg_per_sec"`
}

// GetScannerFromDB reads the scanner geometry valid for runNumber. The values
// override the static configuration so a batch of runs taken with different
// layouts can share one config file.
func GetScannerFromDB(db *sqlx.DB, runNumber int) (ScannerGeometry, error) {
	var geometry ScannerGeometry

	query := fmt.Sprintf("SELECT n_modules, rotation_speed_deg_per_sec FROM ScannerGeometry WHERE MinRun <= %d and MaxRun >= %d", runNumber, runNumber)
	rows, err := db.Queryx(query)
	if err != nil {
		return geometry, err
	}
	defer rows.Close()

	if !rows.Next() {
		return geometry, fmt.Errorf("no scanner geometry found for run %d", runNumber)
	}
	err = rows.StructScan(&geometry)
	if err != nil {
		return geometry, err
	}

	if logger != nil {
		message := fmt.Sprintf("Scanner geometry for run %d: %d modules, %g deg/s", runNumber, geometry.NModules, geometry.RotationSpeed)
		logger.Info(message, "database")
	}
	return geometry, nil
}
