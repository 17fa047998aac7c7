// Package mongo provides MongoDB client construction with environment-based
// configuration, connection retries, and a healthcheck helper.
package mongo
