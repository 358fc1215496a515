package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/common/expfmt"
)

// WriteText writes every metric family of the registry in the Prometheus text
// exposition format. It writes nothing when metrics are disabled.
func WriteText(w io.Writer) error {
	if Registry == nil {
		return nil
	}

	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}
