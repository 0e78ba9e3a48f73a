// Package server serves the htmlr site over HTTP.
//
// Routes:
//
//	GET /              the hello-world page
//	GET /greetings     the greetings list fragment
//	PUT /greetings/{language}  set a greeting (form field "text")
//	GET /time          the clock fragment
//	GET /live          WebSocket pushing the clock fragment (live.enabled)
//	GET /metrics       Prometheus metrics (metrics.enabled)
//	GET /healthz       liveness check
package server
