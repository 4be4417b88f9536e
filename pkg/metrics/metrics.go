package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы записи безопасны для nil-получателя: при выключенных метриках
// в зависимости передается nil.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	VerificationVerdicts *prometheus.CounterVec
	AvailabilityChecks   *prometheus.CounterVec
	BookingsCreated      *prometheus.CounterVec
	WizardTransitions    *prometheus.CounterVec

	serviceName string
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"service", "operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections in use",
		}, []string{"service"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		VerificationVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "verification_verdicts_total",
			Help: "Tenant verification verdicts by status type",
		}, []string{"service", "status_type"}),
		AvailabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_checks_total",
			Help: "Availability checks by outcome",
		}, []string{"service", "outcome"}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Created bookings by rental type",
		}, []string{"service", "rental_type"}),
		WizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wizard_transitions_total",
			Help: "Booking wizard transitions by target step and result",
		}, []string{"service", "step", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.VerificationVerdicts,
		m.AvailabilityChecks,
		m.BookingsCreated,
		m.WizardTransitions,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в label "service"
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

func (m *Metrics) RecordVerdict(statusType string) {
	if m == nil {
		return
	}
	m.VerificationVerdicts.WithLabelValues(m.serviceName, statusType).Inc()
}

func (m *Metrics) RecordAvailability(outcome string) {
	if m == nil {
		return
	}
	m.AvailabilityChecks.WithLabelValues(m.serviceName, outcome).Inc()
}

func (m *Metrics) RecordBookingCreated(rentalType string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName, rentalType).Inc()
}

func (m *Metrics) RecordWizardTransition(step, result string) {
	if m == nil {
		return
	}
	m.WizardTransitions.WithLabelValues(m.serviceName, step, result).Inc()
}
