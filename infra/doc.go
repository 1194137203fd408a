// Package infra contains technical adapters such as the structured logger
// and the metrics exporter. These packages should depend only on the
// types defined in the core packages.
package infra
