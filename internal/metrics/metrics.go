package metrics

import "github.com/prometheus/client_golang/prometheus"

// Domain holds the business counters. A nil *Domain records nothing.
type Domain struct {
	contactSubmissions *prometheus.CounterVec
	resumeDownloads    *prometheus.CounterVec
}

// NewDomain creates the counters and registers them with reg.
func NewDomain(reg prometheus.Registerer) (*Domain, error) {
	d := &Domain{
		contactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Contact form submissions by outcome.",
			},
			[]string{"result"},
		),
		resumeDownloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_downloads_total",
				Help: "Resume download attempts by outcome.",
			},
			[]string{"result"},
		),
	}
	for _, c := range []prometheus.Collector{d.contactSubmissions, d.resumeDownloads} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ContactSubmission records one submission outcome, e.g. "sent" or "invalid".
func (d *Domain) ContactSubmission(result string) {
	if d == nil {
		return
	}
	d.contactSubmissions.WithLabelValues(result).Inc()
}

// ResumeDownload records one download attempt outcome, e.g. "served" or "forbidden".
func (d *Domain) ResumeDownload(result string) {
	if d == nil {
		return
	}
	d.resumeDownloads.WithLabelValues(result).Inc()
}
