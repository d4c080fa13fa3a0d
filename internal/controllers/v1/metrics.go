package v1

import "github.com/prometheus/client_golang/prometheus"

// SubmissionCount counts saved timesheets. source is api for the
// timesheets endpoint and editor for editor submissions, result is created
// or updated.
var SubmissionCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "tracker",
		Name:      "submissions_total",
		Help:      "How many timesheets were saved, partitioned by source and result.",
	},
	[]string{"source", "result"},
)

const (
	sourceAPI    = "api"
	sourceEditor = "editor"
)

func countSubmission(source string, created bool) {
	result := "updated"
	if created {
		result = "created"
	}

	SubmissionCount.WithLabelValues(source, result).Inc()
}
