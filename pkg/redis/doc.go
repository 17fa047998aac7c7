// Package redis provides Redis client construction with environment-based
// configuration, connection retries, and a healthcheck helper.
package redis
