// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the HTTP surface and
// the voting ledgers.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	hearts     *prometheus.CounterVec
	votes      *prometheus.CounterVec
	sentiments prometheus.Counter
	comments   prometheus.Counter
}

// New registers every collector on a private registry so tests can build
// as many instances as they like.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lovewall",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern and status code",
	}, []string{"method", "route", "status"})
	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lovewall",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	m.hearts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lovewall",
		Name:      "hearts_total",
		Help:      "Heart attempts by outcome",
	}, []string{"outcome"})
	m.votes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lovewall",
		Name:      "sentiment_votes_total",
		Help:      "Sentiment vote changes by transition",
	}, []string{"transition"})
	m.sentiments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lovewall",
		Name:      "sentiments_posted_total",
		Help:      "Sentiments posted",
	})
	m.comments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lovewall",
		Name:      "comments_posted_total",
		Help:      "Comments posted",
	})

	m.registry.MustRegister(
		m.requests, m.duration, m.hearts, m.votes, m.sentiments, m.comments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(seconds)
}

// Heart outcomes: "cast", "conflict", "not_found", "error".
func (m *Metrics) Heart(outcome string) {
	m.hearts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Vote(transition string) {
	m.votes.WithLabelValues(transition).Inc()
}

func (m *Metrics) SentimentPosted() {
	m.sentiments.Inc()
}

func (m *Metrics) CommentPosted() {
	m.comments.Inc()
}
