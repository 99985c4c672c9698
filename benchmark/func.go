package benchmark

import (
	"fmt"
	"time"
)

const benchDelay = 10 * time.Millisecond

// slowReport simulates an expensive lookup of a named report.
func slowReport(id int) (string, error) {
	time.Sleep(benchDelay)
	return fmt.Sprintf("report %d", id), nil
}
