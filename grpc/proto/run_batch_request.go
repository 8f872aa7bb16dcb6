package proto

import "fmt"

// Validate checks the request has the three locator fields populated for
// every dispatch row. Extra columns in the host's dispatch table never
// reach the worker; only missing required fields are an error.
func (x *RunBatchRequest) Validate() error {
	for i, row := range x.GetRows() {
		if row.GetSequencePath() == "" {
			return fmt.Errorf("row %d: sequence_path is required", i)
		}
		if row.GetLabelPath() == "" {
			return fmt.Errorf("row %d: label_path is required", i)
		}
		if row.GetThirdDataPath() == "" {
			return fmt.Errorf("row %d: third_data_path is required", i)
		}
	}
	return nil
}
