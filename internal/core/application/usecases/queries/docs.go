// Package queries contains read operations over the order book and the catalog.
// Queries bypass the aggregates and read the tables directly with SQL; they
// take no row locks and never participate in a command's transaction.
package queries

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("wholesale/queries")
