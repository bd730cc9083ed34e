package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

// WriteTextfile writes everything gathered from g to path in the Prometheus
// text format. The file is written to a temporary name and renamed, so a
// collector never reads a partial file.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write metrics textfile failed").
			WithContext("path", path).
			Build()
	}
	return nil
}
