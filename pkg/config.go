package coincidence

import (
	"encoding/json"
	"os"
)

const (
	ModeFullRing    = "full-ring"
	ModePartialRing = "partial-ring"
)

type Configuration struct {
	FileIn        string  `json:"file_in"`
	FileOut       string  `json:"file_out"`
	InputTable    string  `json:"input_table"`
	Mode          string  `json:"mode"`
	TimeWindowNs  float64 `json:"time_window_ns"`
	MinAngleDeg   float64 `json:"min_angle_deg"`
	Rotating      bool    `json:"rotating"`
	RotationSpeed float64 `json:"rotation_speed_deg_per_sec"`
	NModules      int     `json:"n_modules"`
	MaxEvents     int     `json:"max_events"`
	Verbosity     int     `json:"verbosity"`
	RunNumber     int     `json:"run_number"`
	NoDB          bool    `json:"no_db"`
	Host          string  `json:"host"`
	User          string  `json:"user"`
	Passwd        string  `json:"pass"`
	DBName        string  `json:"dbname"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

func LoadConfiguration(filename string) (Configuration, error) {
	var config Configuration

	// Set default values
	config.InputTable = "Singles5"
	config.Mode = ModeFullRing
	config.TimeWindowNs = 4.5
	config.MinAngleDeg = 100.0
	config.Rotating = false
	config.RotationSpeed = 90.0
	config.NModules = 18
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.RunNumber = 0
	config.NoDB = false
	config.Host = "localhost"
	config.User = "petreader"
	config.Passwd = "readonly"
	config.DBName = "PETGEOM"

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}
